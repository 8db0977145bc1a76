package inventory

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/umar710/Inventory-Management-Backend/models"
)

func TestStatusDerivedOnEveryRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p := mustCreate(t, svc, ProductInput{Name: "Cable", Stock: 0}, "alice")
	if p.Status != models.StatusOutOfStock {
		t.Errorf("status = %q, want Out of Stock", p.Status)
	}

	if _, err := svc.UpdateProduct(ctx, p.Id, ProductInput{Name: "Cable", Stock: 8}, "alice"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetProduct(ctx, p.Id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusInStock {
		t.Errorf("status = %q, want In Stock", got.Status)
	}
}

func TestListPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		mustCreate(t, svc, ProductInput{Name: fmt.Sprintf("Product %02d", i), Stock: i}, "alice")
	}

	result, err := svc.ListProducts(ctx, ListOptions{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Products) != 10 {
		t.Errorf("items = %d, want 10", len(result.Products))
	}
	if result.Total != 25 {
		t.Errorf("total = %d, want 25", result.Total)
	}
	if result.Pages != 3 {
		t.Errorf("pages = %d, want 3", result.Pages)
	}
	if result.Page != 2 {
		t.Errorf("current = %d, want 2", result.Page)
	}
	// Default sort is name asc, so page 2 starts at the 11th name.
	if result.Products[0].Name != "Product 11" {
		t.Errorf("first item = %q, want Product 11", result.Products[0].Name)
	}
}

func TestListSearchMatchesNameOrBrandCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, ProductInput{Name: "Laptop", Brand: "Dell", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Mouse", Brand: "Logitech", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Dell Monitor", Brand: "Generic", Stock: 1}, "alice")

	result, err := svc.ListProducts(ctx, ListOptions{Search: "dell"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, p := range result.Products {
		names = append(names, p.Name)
	}
	want := []string{"Dell Monitor", "Laptop"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
}

func TestListCategoryFilterIsExact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, ProductInput{Name: "Pen", Category: "Stationery", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Laptop", Category: "Electronics", Stock: 1}, "alice")

	result, err := svc.ListProducts(ctx, ListOptions{Category: "Stationery"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 || result.Products[0].Name != "Pen" {
		t.Errorf("result = %+v, want only Pen", result.Products)
	}

	// Exact match, not substring.
	result, err = svc.ListProducts(ctx, ListOptions{Category: "Station"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
}

func TestListSortStockDesc(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, ProductInput{Name: "A", Stock: 5}, "alice")
	mustCreate(t, svc, ProductInput{Name: "B", Stock: 50}, "alice")
	mustCreate(t, svc, ProductInput{Name: "C", Stock: 20}, "alice")

	result, err := svc.ListProducts(ctx, ListOptions{Sort: "stock", Order: "desc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var stocks []int
	for _, p := range result.Products {
		stocks = append(stocks, p.Stock)
	}
	if !reflect.DeepEqual(stocks, []int{50, 20, 5}) {
		t.Errorf("stocks = %v, want [50 20 5]", stocks)
	}
}

func TestListUnknownSortFallsBackToName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, ProductInput{Name: "Zebra", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Apple", Stock: 1}, "alice")

	result, err := svc.ListProducts(ctx, ListOptions{Sort: "price; DROP TABLE products"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Products[0].Name != "Apple" {
		t.Errorf("first = %q, want Apple (name asc fallback)", result.Products[0].Name)
	}
}

func TestCategoriesDistinctNonEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, ProductInput{Name: "Pen", Category: "Stationery", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Pencil", Category: "Stationery", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Laptop", Category: "Electronics", Stock: 1}, "alice")
	mustCreate(t, svc, ProductInput{Name: "Misc", Category: "", Stock: 1}, "alice")

	categories, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"Electronics", "Stationery"}
	if !reflect.DeepEqual(categories, want) {
		t.Errorf("categories = %v, want %v", categories, want)
	}
}

func TestUniquenessIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)

	mustCreate(t, svc, ProductInput{Name: "laptop", Stock: 1}, "alice")
	// A different casing is a different name.
	mustCreate(t, svc, ProductInput{Name: "Laptop", Stock: 1}, "alice")
}
