package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"

	"github.com/shopspring/decimal"
)

// productInfo describes a SaaS product the generator can draw from
type productInfo struct {
	Name     string
	Vendor   string
	Category string
	Website  string
	MinCost  float64
	MaxCost  float64
}

type toolGenerator struct {
	productPool []productInfo
	rng         *rand.Rand
}

const (
	maxGeneratedUsers   = 60
	zeroUsersOneInEvery = 8
)

var editionSuffixes = []string{"Team", "Pro", "Business", "Enterprise", "Starter", "Plus"}

// NewToolGenerator creates a generator of realistic sample tools
func NewToolGenerator() ToolGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &toolGenerator{
		productPool: initializeProductPool(),
		rng:         rand.New(source),
	}
}

func initializeProductPool() []productInfo {
	return []productInfo{
		// Communication
		{"Slack", "Slack Technologies", "Communication", "https://slack.com", 6, 15},
		{"Zoom", "Zoom Video", "Communication", "https://zoom.us", 12, 20},
		{"Microsoft Teams", "Microsoft", "Communication", "https://teams.microsoft.com", 4, 12},
		{"Loom", "Atlassian", "Communication", "https://loom.com", 8, 15},

		// Development
		{"GitHub", "GitHub", "Development", "https://github.com", 4, 21},
		{"GitLab", "GitLab", "Development", "https://gitlab.com", 19, 99},
		{"Jira", "Atlassian", "Development", "https://atlassian.com/software/jira", 7, 14},
		{"Sentry", "Sentry", "Development", "https://sentry.io", 26, 80},
		{"Postman", "Postman", "Development", "https://postman.com", 12, 29},

		// Design
		{"Figma", "Figma", "Design", "https://figma.com", 12, 45},
		{"Miro", "Miro", "Design", "https://miro.com", 8, 16},
		{"Canva", "Canva", "Design", "https://canva.com", 10, 30},

		// Productivity
		{"Notion", "Notion Labs", "Productivity", "https://notion.so", 8, 15},
		{"Asana", "Asana", "Productivity", "https://asana.com", 11, 25},
		{"Confluence", "Atlassian", "Productivity", "https://atlassian.com/software/confluence", 5, 10},

		// Analytics
		{"Mixpanel", "Mixpanel", "Analytics", "https://mixpanel.com", 20, 60},
		{"Amplitude", "Amplitude", "Analytics", "https://amplitude.com", 49, 99},
		{"Tableau", "Salesforce", "Analytics", "https://tableau.com", 15, 70},

		// Marketing
		{"HubSpot", "HubSpot", "Marketing", "https://hubspot.com", 20, 90},
		{"Mailchimp", "Intuit", "Marketing", "https://mailchimp.com", 13, 35},

		// CRM and finance
		{"Salesforce", "Salesforce", "CRM", "https://salesforce.com", 25, 150},
		{"Pipedrive", "Pipedrive", "CRM", "https://pipedrive.com", 14, 49},
		{"QuickBooks", "Intuit", "Finance", "https://quickbooks.intuit.com", 30, 90},
		{"Expensify", "Expensify", "Finance", "https://expensify.com", 5, 18},

		// HR and security
		{"BambooHR", "BambooHR", "HR", "https://bamboohr.com", 6, 12},
		{"1Password", "AgileBits", "Security", "https://1password.com", 4, 8},
		{"Okta", "Okta", "Security", "https://okta.com", 2, 15},
	}
}

// GenerateTools builds count create requests spread over the given categories.
// A product whose category is not present is assigned a random one.
func (g *toolGenerator) GenerateTools(categories []models.Category, count int) []dto.CreateToolRequest {
	if len(categories) == 0 || count <= 0 {
		return []dto.CreateToolRequest{}
	}

	byName := make(map[string]int64, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category.ID
	}

	departments := models.AllDepartments()
	statuses := models.AllToolStatuses()

	requests := make([]dto.CreateToolRequest, 0, count)
	for i := 0; i < count; i++ {
		product := g.productPool[g.rng.Intn(len(g.productPool))]

		categoryID, ok := byName[strings.ToLower(product.Category)]
		if !ok {
			categoryID = categories[g.rng.Intn(len(categories))].ID
		}

		cost := g.generateCost(product)
		users := g.generateUsers()
		status := statuses[g.rng.Intn(len(statuses))]
		website := product.Website
		description := fmt.Sprintf("%s subscription managed by %s", product.Name, product.Vendor)

		requests = append(requests, dto.CreateToolRequest{
			Name:             g.generateName(product),
			Description:      &description,
			Vendor:           product.Vendor,
			WebsiteURL:       &website,
			CategoryID:       categoryID,
			MonthlyCost:      &cost,
			ActiveUsersCount: &users,
			OwnerDepartment:  departments[g.rng.Intn(len(departments))],
			Status:           &status,
		})
	}
	return requests
}

func (g *toolGenerator) generateName(product productInfo) string {
	suffix := editionSuffixes[g.rng.Intn(len(editionSuffixes))]
	return fmt.Sprintf("%s %s %03d", product.Name, suffix, g.rng.Intn(1000))
}

func (g *toolGenerator) generateCost(product productInfo) decimal.Decimal {
	amount := product.MinCost + g.rng.Float64()*(product.MaxCost-product.MinCost)
	return decimal.NewFromFloat(amount).Round(2)
}

// generateUsers leaves roughly one tool in eight unused
func (g *toolGenerator) generateUsers() int {
	if g.rng.Intn(zeroUsersOneInEvery) == 0 {
		return 0
	}
	return 1 + g.rng.Intn(maxGeneratedUsers)
}
