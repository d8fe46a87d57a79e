package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	orderService "github.com/pttech/storefront/order/service"
	orderResponse "github.com/pttech/storefront/order/pkg/response"
	reviewRequest "github.com/pttech/storefront/review/pkg/request"
)

func orderCommand(svc services) *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Order history and order actions",
	}

	var status string
	var page int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first, filtered and paginated",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := svc.order.FindOrders(cmd.Context())
			if err != nil {
				return err
			}
			filtered := orderService.FilterByStatus(orders, status)
			paged := orderService.Paginate(filtered, page, svc.config.PageSize)
			if err := printJson(paged); err != nil {
				return err
			}
			fmt.Printf(
				"page %d of %d (%d orders)\n",
				page, orderService.TotalPages(len(filtered), svc.config.PageSize), len(filtered),
			)
			return nil
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "order status filter")
	listCmd.Flags().IntVar(&page, "page", 1, "page number")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Count and sum orders per status bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := svc.order.FindOrders(cmd.Context())
			if err != nil {
				return err
			}
			summary := orderService.Summarize(orders)
			fmt.Printf("waiting:    %d orders, total %s\n", summary.Waiting.Count, summary.Waiting.Total)
			fmt.Printf("delivering: %d orders, total %s\n", summary.Delivering.Count, summary.Delivering.Total)
			fmt.Printf("delivered:  %d orders, total %s\n", summary.Delivered.Count, summary.Delivered.Total)
			fmt.Printf("all:        %d orders\n", summary.TotalOrders)
			return nil
		},
	}

	var cancelReason string
	cancelCmd := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Request cancellation of a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.order.CancelOrder(cmd.Context(), args[0], cancelReason); err != nil {
				return err
			}
			fmt.Println("cancellation requested")
			return nil
		},
	}
	cancelCmd.Flags().StringVar(&cancelReason, "reason", "", "cancellation reason")

	var returnReason string
	returnCmd := &cobra.Command{
		Use:   "return <order-id>",
		Short: "Request a return of a delivered order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.order.RequestReturn(cmd.Context(), args[0], returnReason); err != nil {
				return err
			}
			fmt.Println("return requested")
			return nil
		},
	}
	returnCmd.Flags().StringVar(&returnReason, "reason", "", "return reason")

	review := reviewRequest.Review{}
	reviewCmd := &cobra.Command{
		Use:   "review <order-id>",
		Short: "Review a product variant from a delivered order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			review.OrderID = args[0]
			orders, err := svc.order.FindOrders(cmd.Context())
			if err != nil {
				return err
			}
			for _, order := range orders {
				if order.ID != review.OrderID {
					continue
				}
				for _, item := range order.Items {
					if item.VariantID == review.ProductVariantID {
						review.ProductID = item.ProductID
						review.ProductName = item.ProductName
					}
				}
			}
			if err := svc.review.Submit(cmd.Context(), review); err != nil {
				return err
			}
			fmt.Println("review submitted")
			return nil
		},
	}
	reviewCmd.Flags().StringVar(&review.ProductVariantID, "variant", "", "product variant id")
	reviewCmd.Flags().IntVar(&review.Rating, "rating", 0, "rating from 1 to 5")
	reviewCmd.Flags().StringVar(&review.Review, "text", "", "review text")
	reviewCmd.Flags().StringVar(&review.ReviewTitle, "title", "", "review title")

	reviewedCmd := &cobra.Command{
		Use:   "reviewed",
		Short: "Show which delivered order variants already carry a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := svc.order.FindOrders(cmd.Context())
			if err != nil {
				return err
			}
			reviewed, err := svc.review.FindReviewedVariants(cmd.Context(), orders)
			if err != nil {
				return err
			}
			for _, order := range orders {
				if order.OrderStatus != orderResponse.StatusDelivered {
					continue
				}
				for _, item := range order.Items {
					state := "reviewable"
					if reviewed.Contains(order.ID, item.VariantID) {
						state = "reviewed"
					}
					fmt.Printf("order=%s variant=%s %s: %s\n",
						order.ID, item.VariantID, item.ProductName, state)
				}
			}
			return nil
		},
	}

	orderCmd.AddCommand(listCmd, summaryCmd, cancelCmd, returnCmd, reviewCmd, reviewedCmd)
	return orderCmd
}
