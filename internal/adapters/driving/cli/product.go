package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
	Long: `Add, list, update and delete products.

Products belong to the signed-in user unless --owner is given. Update and
delete only touch a product when both the ID and the owner match.`,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Long: `Add a product. Name, description and category are required.

Example:
  shopdesk product add --name Lamp --price 19.90 --description "Desk lamp" --category Home`,
	Args: cobra.NoArgs,
	RunE: runProductAdd,
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE:  runProductList,
}

var productShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductShow,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a product",
	Long: `Update a product. Only the fields passed as flags change.

Example:
  shopdesk product update 3 --price 24.50`,
	Args: cobra.ExactArgs(1),
	RunE: runProductUpdate,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductDelete,
}

// Flags for product commands.
var (
	productName        string
	productPrice       float64
	productDescription string
	productCategory    string
	productOwner       string
	productListAll     bool
	productDeleteYes   bool
)

func init() {
	for _, c := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().Float64Var(&productPrice, "price", 0, "Product price")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().StringVar(&productCategory, "category", "", "Product category")
	}
	for _, c := range []*cobra.Command{productAddCmd, productListCmd, productShowCmd, productUpdateCmd, productDeleteCmd} {
		c.Flags().StringVar(&productOwner, "owner", "", "Owner email (defaults to the signed-in user)")
	}
	productListCmd.Flags().BoolVarP(&productListAll, "all", "a", false, "List products of every owner")
	productDeleteCmd.Flags().BoolVarP(&productDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productShowCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	rootCmd.AddCommand(productCmd)
}

func runProductAdd(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	ctx := cmd.Context()

	owner, err := resolveOwner(ctx, productOwner)
	if err != nil {
		return err
	}

	product := domain.Product{
		Name:        productName,
		Price:       productPrice,
		Description: productDescription,
		Category:    productCategory,
		OwnerEmail:  owner,
	}
	if err := product.Complete(); err != nil {
		return err
	}

	id, err := productService.Add(ctx, product)
	if err != nil {
		return err
	}

	cmd.Printf("Added product %d\n", id)
	return nil
}

func runProductList(cmd *cobra.Command, _ []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	ctx := cmd.Context()

	var (
		products []domain.Product
		err      error
	)
	if productListAll {
		products, err = productService.List(ctx)
	} else {
		var owner string
		if owner, err = resolveOwner(ctx, productOwner); err != nil {
			return err
		}
		products, err = productService.ListByOwner(ctx, owner)
	}
	if err != nil {
		return err
	}

	if len(products) == 0 {
		cmd.Println("No products.")
		return nil
	}

	cmd.Println("Products:")
	for _, p := range products {
		cmd.Printf("  [%d] %s  %.2f  (%s)\n", p.ID, p.Name, p.Price, p.Category)
		if productListAll {
			cmd.Printf("       Owner: %s\n", p.OwnerEmail)
		}
	}
	return nil
}

func runProductShow(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	ctx := cmd.Context()

	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	owner, err := resolveOwner(ctx, productOwner)
	if err != nil {
		return err
	}

	p, err := productService.Get(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no product %d owned by %s", id, owner)
		}
		return err
	}

	cmd.Printf("ID:          %d\n", p.ID)
	cmd.Printf("Name:        %s\n", p.Name)
	cmd.Printf("Price:       %.2f\n", p.Price)
	cmd.Printf("Description: %s\n", p.Description)
	cmd.Printf("Category:    %s\n", p.Category)
	cmd.Printf("Owner:       %s\n", p.OwnerEmail)
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	ctx := cmd.Context()

	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	owner, err := resolveOwner(ctx, productOwner)
	if err != nil {
		return err
	}

	existing, err := productService.Get(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no product %d owned by %s", id, owner)
		}
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		existing.Name = productName
	}
	if flags.Changed("price") {
		existing.Price = productPrice
	}
	if flags.Changed("description") {
		existing.Description = productDescription
	}
	if flags.Changed("category") {
		existing.Category = productCategory
	}
	if err := existing.Complete(); err != nil {
		return err
	}

	affected, err := productService.Update(ctx, *existing)
	if err != nil {
		return err
	}
	if affected == 0 {
		cmd.Printf("No product %d owned by %s was updated\n", id, owner)
		return nil
	}

	cmd.Printf("Updated product %d\n", id)
	return nil
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	if productService == nil {
		return errors.New("product service not configured")
	}
	ctx := cmd.Context()

	id, err := parseProductID(args[0])
	if err != nil {
		return err
	}
	owner, err := resolveOwner(ctx, productOwner)
	if err != nil {
		return err
	}

	if !productDeleteYes {
		ok, err := newPrompter(cmd).confirm(fmt.Sprintf("Delete product %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Cancelled")
			return nil
		}
	}

	affected, err := productService.Delete(ctx, id, owner)
	if err != nil {
		return err
	}
	if affected == 0 {
		cmd.Printf("No product %d owned by %s was deleted\n", id, owner)
		return nil
	}

	cmd.Printf("Deleted product %d\n", id)
	return nil
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: product id must be a positive integer, got %q", domain.ErrInvalidInput, raw)
	}
	return id, nil
}
