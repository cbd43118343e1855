package sqlite

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ProductStore = (*productStore)(nil)

type productStore struct {
	store *Store
}

const productColumns = `id, name, price, description, category, owner_email`

// Add inserts a product and returns the assigned ID.
func (p *productStore) Add(ctx context.Context, product domain.Product) (int64, error) {
	var id int64
	err := p.store.withDB("adding product", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, `
			INSERT INTO products (name, price, description, category, owner_email)
			VALUES (?, ?, ?, ?, ?)
		`, product.Name, product.Price, product.Description, product.Category, product.OwnerEmail)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get retrieves a product by ID scoped to its owner.
func (p *productStore) Get(ctx context.Context, id int64, ownerEmail string) (*domain.Product, error) {
	var product *domain.Product
	err := p.store.withDB("getting product", func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = ? AND owner_email = ?`,
			id, ownerEmail,
		)
		found, err := scanProduct(row)
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		product = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// List returns every product ordered by ID.
func (p *productStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := p.store.withDB("listing products", func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
		if err != nil {
			return err
		}
		products, err = scanProductRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListByOwner returns the products belonging to ownerEmail.
func (p *productStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Product, error) {
	var products []domain.Product
	err := p.store.withDB("listing user products", func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE owner_email = ? ORDER BY id`, ownerEmail)
		if err != nil {
			return err
		}
		products, err = scanProductRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Update rewrites the product matching both ID and owner.
func (p *productStore) Update(ctx context.Context, product domain.Product) (int64, error) {
	var affected int64
	err := p.store.withDB("updating product", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, `
			UPDATE products
			SET name = ?, price = ?, description = ?, category = ?
			WHERE id = ? AND owner_email = ?
		`, product.Name, product.Price, product.Description, product.Category,
			product.ID, product.OwnerEmail)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes the product matching both ID and owner.
func (p *productStore) Delete(ctx context.Context, id int64, ownerEmail string) (int64, error) {
	var affected int64
	err := p.store.withDB("deleting product", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			`DELETE FROM products WHERE id = ? AND owner_email = ?`, id, ownerEmail)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func scanProduct(row *sql.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.OwnerEmail,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func scanProductRows(rows *sql.Rows) ([]domain.Product, error) {
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Category,
			&product.OwnerEmail,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
