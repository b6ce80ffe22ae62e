package dashboard

import (
	"strings"

	"go_assettag/internal/model"

	"gorm.io/gorm"
)

// CompanySummary is one by-company row in the dashboard summary
type CompanySummary struct {
	Company    string  `json:"company"`
	AssetCount int     `json:"asset_count"`
	TotalCost  float64 `json:"total_cost"`
	Categories string  `json:"categories"`
}

// Summary is the dashboard aggregation over all non-deleted assets
type Summary struct {
	TotalAssets int              `json:"totalAssets"`
	TotalCost   float64          `json:"totalCost"`
	ByCompany   []CompanySummary `json:"byCompany"`
}

type companyGroup struct {
	name       string
	count      int
	cost       float64
	categories []string
	seen       map[string]bool
}

// Compute recomputes the summary from current state. Soft-deleted assets are
// excluded; a missing cost counts as zero; a broken company reference is
// reported as "Unknown". Output order follows first appearance by asset id,
// so the result is deterministic for a given data set.
func Compute(db *gorm.DB) (*Summary, error) {
	var assets []model.Asset
	if err := db.
		Preload("Company").
		Preload("Category").
		Order("id ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}

	summary := &Summary{ByCompany: []CompanySummary{}}

	groups := make(map[int]*companyGroup)
	var order []int

	for _, asset := range assets {
		summary.TotalAssets++

		cost := 0.0
		if asset.Cost != nil {
			cost = *asset.Cost
		}
		summary.TotalCost += cost

		g, ok := groups[asset.CompanyID]
		if !ok {
			name := "Unknown"
			if asset.Company != nil {
				name = asset.Company.Name
			}
			g = &companyGroup{name: name, seen: make(map[string]bool)}
			groups[asset.CompanyID] = g
			order = append(order, asset.CompanyID)
		}

		g.count++
		g.cost += cost

		if asset.Category != nil && !g.seen[asset.Category.Name] {
			g.seen[asset.Category.Name] = true
			g.categories = append(g.categories, asset.Category.Name)
		}
	}

	for _, companyID := range order {
		g := groups[companyID]
		summary.ByCompany = append(summary.ByCompany, CompanySummary{
			Company:    g.name,
			AssetCount: g.count,
			TotalCost:  g.cost,
			Categories: strings.Join(g.categories, ", "),
		})
	}

	return summary, nil
}
