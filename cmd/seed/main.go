// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"dealerdesk/internal/infrastructure/storage/postgres"
	"dealerdesk/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	tm := postgres.NewTxManager(pool)

	refs, err := seedReferenceData(ctx, tm, log)
	if err != nil {
		log.Fatalw("failed to seed reference data", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoInventory(ctx, tm, log, refs); err != nil {
			log.Fatalw("failed to seed demo inventory", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// refIDs holds the IDs of reference rows the demo inventory links to.
type refIDs struct {
	manufacturers map[string]int64
	vehicleTypes  map[string]int64
	colors        map[string]int64
	ownerUserID   int64
	customerID    int64
	vendorID      int64
}

// lookupOrInsert finds a row by its name column, inserting it when missing.
// The seeder runs repeatedly during development, so every step is idempotent.
func lookupOrInsert(ctx context.Context, q postgres.Querier, selectSQL, insertSQL string, name string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, selectSQL, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("lookup %q: %w", name, err)
	}
	if err := q.QueryRow(ctx, insertSQL, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %q: %w", name, err)
	}
	return id, nil
}

func seedReferenceData(ctx context.Context, tm *postgres.TxManager, log *logger.Logger) (*refIDs, error) {
	refs := &refIDs{
		manufacturers: make(map[string]int64),
		vehicleTypes:  make(map[string]int64),
		colors:        make(map[string]int64),
	}

	err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := tm.GetQuerier(ctx)

		for _, name := range []string{"Acura", "BMW", "Ford", "Honda", "Toyota", "Volkswagen"} {
			id, err := lookupOrInsert(ctx, q,
				`SELECT manufacturer_id FROM manufacturers WHERE manufacturer_name = $1`,
				`INSERT INTO manufacturers (manufacturer_name) VALUES ($1) RETURNING manufacturer_id`,
				name)
			if err != nil {
				return err
			}
			refs.manufacturers[name] = id
		}

		for _, name := range []string{"Sedan", "SUV", "Coupe", "Truck", "Convertible", "Minivan"} {
			id, err := lookupOrInsert(ctx, q,
				`SELECT vehicle_type_id FROM vehicle_types WHERE vehicle_type_name = $1`,
				`INSERT INTO vehicle_types (vehicle_type_name) VALUES ($1) RETURNING vehicle_type_id`,
				name)
			if err != nil {
				return err
			}
			refs.vehicleTypes[name] = id
		}

		for _, name := range []string{"Black", "Blue", "Gray", "Red", "Silver", "White"} {
			id, err := lookupOrInsert(ctx, q,
				`SELECT color_id FROM colors WHERE color_name = $1`,
				`INSERT INTO colors (color_name) VALUES ($1) RETURNING color_id`,
				name)
			if err != nil {
				return err
			}
			refs.colors[name] = id
		}

		var err error
		refs.ownerUserID, err = lookupOrInsert(ctx, q,
			`SELECT user_id FROM users WHERE username = $1`,
			`INSERT INTO users (first_name, last_name, username, role) VALUES ('Demo', 'Owner', $1, 'owner') RETURNING user_id`,
			"demo.owner")
		if err != nil {
			return err
		}

		refs.customerID, err = lookupOrInsert(ctx, q,
			`SELECT customer_id FROM customers WHERE last_name = $1`,
			`INSERT INTO customers (first_name, last_name) VALUES ('Demo', $1) RETURNING customer_id`,
			"Customer")
		if err != nil {
			return err
		}

		refs.vendorID, err = lookupOrInsert(ctx, q,
			`SELECT vendor_id FROM vendors WHERE vendor_name = $1`,
			`INSERT INTO vendors (vendor_name) VALUES ($1) RETURNING vendor_id`,
			"Demo Parts Supply")
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("reference data seeded",
		"manufacturers", len(refs.manufacturers),
		"vehicle_types", len(refs.vehicleTypes),
		"colors", len(refs.colors),
	)
	return refs, nil
}

func seedDemoInventory(ctx context.Context, tm *postgres.TxManager, log *logger.Logger, refs *refIDs) error {
	log.Info("seeding demo inventory...")

	vehicles := []struct {
		vin           string
		mileage       int
		description   string
		modelName     string
		modelYear     int
		fuelType      string
		manufacturer  string
		vehicleType   string
		colors        []string
		purchasePrice float64
	}{
		{"1HGCM82633A004352", 42000, "Well maintained, one owner", "Accord", 2019, "Gas", "Honda", "Sedan", []string{"Silver"}, 14500},
		{"5YJ3E1EA7KF317000", 12000, "Low mileage trade-in", "Camry", 2022, "Hybrid", "Toyota", "Sedan", []string{"White", "Black"}, 21000},
		{"WVWZZZ1JZXW000001", 88000, "Minor cosmetic wear", "Golf", 2016, "Gas", "Volkswagen", "Coupe", []string{"Blue"}, 7800},
		{"1FTFW1ET5DFC10312", 63000, "Tow package installed", "F-150", 2020, "Diesel", "Ford", "Truck", []string{"Red", "Gray"}, 26500},
	}

	for _, v := range vehicles {
		v := v
		err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
			q := tm.GetQuerier(ctx)

			var existingID int64
			err := q.QueryRow(ctx, `SELECT vehicle_id FROM vehicles WHERE vin = $1`, v.vin).Scan(&existingID)
			if err == nil {
				return nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("check vehicle %s: %w", v.vin, err)
			}

			var vehicleID int64
			err = q.QueryRow(ctx, `
				INSERT INTO vehicles (vin, mileage, description, model_name, model_year, fuel_type, manufacturer_id, vehicle_type_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING vehicle_id
			`, v.vin, v.mileage, v.description, v.modelName, v.modelYear, v.fuelType,
				refs.manufacturers[v.manufacturer], refs.vehicleTypes[v.vehicleType]).Scan(&vehicleID)
			if err != nil {
				return fmt.Errorf("insert vehicle %s: %w", v.vin, err)
			}

			for _, color := range v.colors {
				_, err = q.Exec(ctx, `
					INSERT INTO vehicle_colors (vehicle_id, color_id) VALUES ($1, $2)
				`, vehicleID, refs.colors[color])
				if err != nil {
					return fmt.Errorf("link color %s: %w", color, err)
				}
			}

			_, err = q.Exec(ctx, `
				INSERT INTO purchase_transactions (vehicle_id, user_id, customer_id, purchase_price, purchase_date, vehicle_condition)
				VALUES ($1, $2, $3, $4, CURRENT_DATE, 'Good')
			`, vehicleID, refs.ownerUserID, refs.customerID, v.purchasePrice)
			if err != nil {
				return fmt.Errorf("insert purchase for %s: %w", v.vin, err)
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	log.Info("demo inventory seeded successfully")
	return nil
}
