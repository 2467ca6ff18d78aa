package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/designxpo/poonam-cosmetics-backend/config"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Imports the product catalog from an XLSX sheet with the columns:
// name, category slug, brand name, price, stock, description, image URL,
// featured (yes/no). The first row is treated as a header.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := db.Seed(); err != nil {
		log.Fatal("Failed to seed base catalog:", err)
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	brandRepo := repository.NewBrandRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Rows to import: %d\n", len(rows)-1)
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	skipped := 0
	slugCounter := make(map[string]int)

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		categorySlug := strings.TrimSpace(row[1])
		brandName := strings.TrimSpace(row[2])
		price, errPrice := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		stock, errStock := strconv.Atoi(strings.TrimSpace(row[4]))

		if name == "" || categorySlug == "" || errPrice != nil || errStock != nil || price <= 0 {
			skipped++
			continue
		}

		category, err := categoryRepo.FindBySlug(categorySlug)
		if err != nil {
			fmt.Printf("Row %d: unknown category %q, skipping\n", i+1, categorySlug)
			skipped++
			continue
		}

		var brandID *uint
		if brandName != "" {
			brand, err := brandRepo.FindBySlug(util.Slugify(brandName))
			if err != nil {
				brand = &model.Brand{
					Name:   brandName,
					Slug:   util.Slugify(brandName),
					Active: true,
				}
				if err := brandRepo.Create(brand); err != nil {
					log.Fatal("Failed to create brand:", err)
				}
			}
			brandID = &brand.ID
		}

		description := ""
		if len(row) > 5 {
			description = strings.TrimSpace(row[5])
		}
		var images []string
		if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
			images = []string{strings.TrimSpace(row[6])}
		}
		featured := false
		if len(row) > 7 {
			v := strings.ToLower(strings.TrimSpace(row[7]))
			featured = v == "yes" || v == "true" || v == "1"
		}

		slug := util.Slugify(name)
		slugCounter[slug]++
		if n := slugCounter[slug]; n > 1 {
			slug = fmt.Sprintf("%s-%d", slug, n)
		}

		product := &model.Product{
			Name:        name,
			Slug:        slug,
			Description: description,
			Price:       price,
			CategoryID:  category.ID,
			BrandID:     brandID,
			Images:      images,
			Stock:       stock,
			Featured:    featured,
			Active:      true,
		}
		if err := productRepo.Create(product); err != nil {
			fmt.Printf("Row %d: failed to create product %q: %v\n", i+1, name, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Println("Import completed.")
	fmt.Printf("Imported: %d, skipped: %d\n", imported, skipped)
}

func readRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}
	return rows, nil
}
