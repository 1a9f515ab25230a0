// Package domain contains the core catalog entities and value objects.
// It represents the fixed relational shape the bulk importer populates,
// independent of any specific infrastructure or delivery mechanism.
package domain
