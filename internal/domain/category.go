package domain

import "fmt"

// CategoryID is the canonical category value stored in the source's
// Category select property.
type CategoryID string

const (
	CategoryAWS      CategoryID = "AWS"
	CategoryDatabase CategoryID = "DataBase"
	CategoryDevOps   CategoryID = "DevOps"
	CategoryAI       CategoryID = "AI"
	CategoryFrontend CategoryID = "Frontend"
	CategoryBackend  CategoryID = "Backend"
)

// FallbackCategory is assigned to entries whose category is missing or unknown.
const FallbackCategory = CategoryBackend

// Category describes one of the fixed topical classifications.
type Category struct {
	ID          CategoryID `json:"id"`
	Slug        string     `json:"slug"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
}

var categoryTable = [...]Category{
	{ID: CategoryAWS, Slug: "aws", Label: "AWS", Description: "Cloud services and infrastructure"},
	{ID: CategoryDatabase, Slug: "database", Label: "Database", Description: "Database design and optimization"},
	{ID: CategoryDevOps, Slug: "devops", Label: "DevOps", Description: "CI/CD, deployment, monitoring"},
	{ID: CategoryAI, Slug: "ai", Label: "AI", Description: "Artificial intelligence and machine learning"},
	{ID: CategoryFrontend, Slug: "frontend", Label: "Frontend", Description: "Frontend development"},
	{ID: CategoryBackend, Slug: "backend", Label: "Backend", Description: "Backend development"},
}

var (
	categoriesBySlug = indexCategories(func(c Category) string { return c.Slug })
	categoriesByID   = indexCategories(func(c Category) string { return string(c.ID) })
)

func indexCategories(key func(Category) string) map[string]Category {
	m := make(map[string]Category, len(categoryTable))
	for _, c := range categoryTable {
		m[key(c)] = c
	}
	return m
}

// Categories returns the category table in display order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	copy(out, categoryTable[:])
	return out
}

func IsValidCategorySlug(slug string) bool {
	_, ok := categoriesBySlug[slug]
	return ok
}

func IsValidCategoryID(id string) bool {
	_, ok := categoriesByID[id]
	return ok
}

func CategoryBySlug(slug string) (Category, bool) {
	c, ok := categoriesBySlug[slug]
	return c, ok
}

func CategoryByID(id CategoryID) (Category, bool) {
	c, ok := categoriesByID[string(id)]
	return c, ok
}

// SlugToCategoryID converts a slug that was already validated.
// It panics on an unknown slug.
func SlugToCategoryID(slug string) CategoryID {
	c, ok := categoriesBySlug[slug]
	if !ok {
		panic(fmt.Sprintf("domain: unknown category slug %q", slug))
	}
	return c.ID
}

// CategoryIDToSlug converts a category id that was already validated.
// It panics on an unknown id.
func CategoryIDToSlug(id CategoryID) string {
	c, ok := categoriesByID[string(id)]
	if !ok {
		panic(fmt.Sprintf("domain: unknown category id %q", id))
	}
	return c.Slug
}
