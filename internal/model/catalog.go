package model

// Pricing tiers shared by tools and courses.
const (
	PricingFree     = "Free"
	PricingFreemium = "Freemium"
	PricingPaid     = "Paid"
)

// Tool - An AI tool in the catalog.
type Tool struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Subcategory string   `json:"subcategory" yaml:"subcategory"`
	URL         string   `json:"url" yaml:"url"`
	Pricing     string   `json:"pricing" yaml:"pricing"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Features    []string `json:"features" yaml:"features"`
	UseCases    []string `json:"use_cases" yaml:"use_cases"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Course - An online course in the catalog.
type Course struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Provider       string   `json:"provider" yaml:"provider"`
	Category       string   `json:"category" yaml:"category"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Duration       string   `json:"duration" yaml:"duration"`
	HasCertificate bool     `json:"has_certificate" yaml:"has_certificate"`
	URL            string   `json:"url" yaml:"url"`
	Description    string   `json:"description" yaml:"description"`
	Difficulty     string   `json:"difficulty" yaml:"difficulty"`
	Price          string   `json:"price" yaml:"price"`
	Tags           []string `json:"tags" yaml:"tags"`
}
