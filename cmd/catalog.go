package cmd

import (
	"github.com/spf13/cobra"
)

func catalogCommand(svc services) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse products, brands, categories and promotions",
	}

	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := svc.catalog.FindProducts(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(products)
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search products by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := svc.catalog.SearchProducts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJson(products)
		},
	}

	productCmd := &cobra.Command{
		Use:   "product <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := svc.catalog.FindProductById(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJson(product)
		},
	}

	brandsCmd := &cobra.Command{
		Use:   "brands",
		Short: "List all brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			brands, err := svc.catalog.FindBrands(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(brands)
		},
	}

	brandCmd := &cobra.Command{
		Use:   "brand <brand-id>",
		Short: "Show one brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := svc.catalog.FindBrandById(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJson(brand)
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := svc.catalog.FindCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(categories)
		},
	}

	var productID string
	discountCodesCmd := &cobra.Command{
		Use:   "discount-codes",
		Short: "List discount codes, optionally narrowed to one product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if productID != "" {
				codes, err := svc.catalog.FindDiscountCodesForProduct(cmd.Context(), productID)
				if err != nil {
					return err
				}
				return printJson(codes)
			}
			codes, err := svc.catalog.FindDiscountCodes(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(codes)
		},
	}
	discountCodesCmd.Flags().StringVar(&productID, "product", "", "product id")

	adsCmd := &cobra.Command{
		Use:   "ads",
		Short: "List advertisement banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			ads, err := svc.catalog.FindAdImages(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(ads)
		},
	}

	catalogCmd.AddCommand(
		productsCmd,
		searchCmd,
		productCmd,
		brandsCmd,
		brandCmd,
		categoriesCmd,
		discountCodesCmd,
		adsCmd,
	)
	return catalogCmd
}
