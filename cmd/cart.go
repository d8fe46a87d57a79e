package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cartService "github.com/pttech/storefront/cart/service"
	cartRequest "github.com/pttech/storefront/cart/pkg/request"
)

func cartCommand(svc services) *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and mutate the shopping cart",
	}

	var discountCode string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart with a checkout price preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := svc.cart.FindCart(cmd.Context())
			if err != nil {
				return err
			}
			if err := printJson(cart); err != nil {
				return err
			}
			discount := cartService.DiscountAmount(discountCode, cart.TotalPrice)
			final := cartService.FinalPrice(cart.TotalPrice, discount)
			fmt.Printf(
				"subtotal=%s discount=%s shipping=%s final=%s\n",
				cart.TotalPrice, discount, cartService.ShippingFee, final,
			)
			return nil
		},
	}
	showCmd.Flags().StringVar(&discountCode, "discount", "", "discount percentage input")

	var productID, variantID string
	withItemFlags := func(cmd *cobra.Command) *cobra.Command {
		cmd.Flags().StringVar(&productID, "product", "", "product id")
		cmd.Flags().StringVar(&variantID, "variant", "", "variant id")
		return cmd
	}

	increaseCmd := withItemFlags(&cobra.Command{
		Use:   "increase",
		Short: "Increase an item's quantity by one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := svc.cart.FindCart(cmd.Context()); err != nil {
				return err
			}
			cart, err := svc.cart.IncreaseQuantity(cmd.Context(), productID, variantID)
			if err != nil {
				return err
			}
			return printJson(cart)
		},
	})

	decreaseCmd := withItemFlags(&cobra.Command{
		Use:   "decrease",
		Short: "Decrease an item's quantity by one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := svc.cart.FindCart(cmd.Context()); err != nil {
				return err
			}
			cart, err := svc.cart.DecreaseQuantity(cmd.Context(), productID, variantID)
			if err != nil {
				return err
			}
			return printJson(cart)
		},
	})

	removeCmd := withItemFlags(&cobra.Command{
		Use:   "remove",
		Short: "Remove an item from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := svc.cart.FindCart(cmd.Context()); err != nil {
				return err
			}
			cart, err := svc.cart.RemoveItem(cmd.Context(), productID, variantID)
			if err != nil {
				return err
			}
			return printJson(cart)
		},
	})

	addItem := cartRequest.AddCartItem{}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product variant to the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := svc.catalog.FindProductById(cmd.Context(), addItem.ProductID)
			if err != nil {
				return err
			}
			cart, err := svc.cart.FindCart(cmd.Context())
			if err != nil {
				return err
			}
			addItem.BrandID = product.BrandID
			addItem.CategoryID = product.CategoryID
			addItem.ProductName = product.Name
			addItem.OriginalPrice = product.Pricing.Original
			addItem.DiscountPrice = product.Pricing.Current
			addItem.RatingAverage = product.Ratings.Average
			addItem.TotalReviews = product.Ratings.TotalReviews
			addItem.Condition = product.Condition
			if len(product.Images) > 0 {
				addItem.ProductImage = product.Images[0]
			}
			for _, variant := range product.Variants {
				if variant.VariantID == addItem.VariantID {
					addItem.Color = variant.Color
					addItem.HexCode = variant.HexCode
					addItem.Size = variant.Size
					addItem.Ram = variant.Ram
					addItem.Storage = variant.Storage
				}
			}
			if err := svc.cart.AddItem(cmd.Context(), cart.ID, addItem); err != nil {
				return err
			}
			fmt.Println("added to cart")
			return nil
		},
	}
	addCmd.Flags().StringVar(&addItem.ProductID, "product", "", "product id")
	addCmd.Flags().StringVar(&addItem.VariantID, "variant", "", "variant id")
	addCmd.Flags().IntVar(&addItem.Quantity, "quantity", 1, "quantity")

	checkout := cartRequest.Checkout{}
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := svc.cart.FindCart(cmd.Context()); err != nil {
				return err
			}
			placed, report, err := svc.cart.Checkout(cmd.Context(), checkout)
			if err != nil {
				return err
			}
			if err := printJson(placed); err != nil {
				return err
			}
			if !report.AllCleared() {
				fmt.Printf("warning: %d cart items could not be cleared on the server\n",
					len(report.Failures))
			}
			return nil
		},
	}
	checkoutCmd.Flags().StringVar(&checkout.Street, "street", "", "street")
	checkoutCmd.Flags().StringVar(&checkout.Communes, "communes", "", "communes")
	checkoutCmd.Flags().StringVar(&checkout.District, "district", "", "district")
	checkoutCmd.Flags().StringVar(&checkout.City, "city", "", "city")
	checkoutCmd.Flags().StringVar(&checkout.Country, "country", "", "country")
	checkoutCmd.Flags().StringVar(&checkout.PhoneNumber, "phone", "", "phone number")
	checkoutCmd.Flags().StringVar(&checkout.OrderNotes, "notes", "", "order notes")
	checkoutCmd.Flags().StringVar(&checkout.DiscountCode, "discount", "", "discount percentage input")

	cartCmd.AddCommand(showCmd, increaseCmd, decreaseCmd, removeCmd, addCmd, checkoutCmd)
	return cartCmd
}
