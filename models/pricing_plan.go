package models

import (
	"strconv"
)

// PricingPlan is a single tier shown in the pricing section
type PricingPlan struct {
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Period    string   `json:"period"`
	Highlight bool     `json:"highlight"`
	Features  []string `json:"features"`
	CTA       string   `json:"cta"`
}

// PricingResponse is the body returned by GET /api/pricing
type PricingResponse struct {
	Plans []PricingPlan `json:"plans"`
}

// FormattedPrice renders the price without trailing zeros ("29", "9.5")
func (p PricingPlan) FormattedPrice() string {
	return strconv.FormatFloat(p.Price, 'f', -1, 64)
}
