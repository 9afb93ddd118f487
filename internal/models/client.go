package models

import "time"

// Client statuses as shown in the client detail form.
const (
	StatusActive     = "Active"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Client is a product or offer being marketed. ImmersionData is nil until a
// research report has been generated, and is replaced wholesale on
// regeneration.
type Client struct {
	ID              string          `json:"id,omitempty"`
	UserID          string          `json:"user_id"`
	ProductName     string          `json:"product_name"`
	Country         string          `json:"country"`
	Price           string          `json:"price"`
	Status          string          `json:"status"`
	Problems        []string        `json:"problems"`
	TargetCustomers string          `json:"target_customers"`
	Warranty        string          `json:"warranty"`
	Promotion       string          `json:"promotion"`
	Uniqueness      string          `json:"uniqueness"`
	ImmersionData   *ImmersionData  `json:"immersion_data,omitempty"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
}

// ImmersionData is the generated "Offer, Avatar & User Typology Immersion
// Research" report attached to a single client. Field names must match the
// JSON schema demanded from the model verbatim.
type ImmersionData struct {
	AvatarProfile     AvatarProfile     `json:"avatarProfile"`
	UserTypologies    []UserTypology    `json:"userTypologies"`
	OfferAnalysis     OfferAnalysis     `json:"offerAnalysis"`
	MarketingInsights MarketingInsights `json:"marketingInsights"`
	Recommendations   Recommendations   `json:"recommendations"`
}

type AvatarProfile struct {
	Demographics   string   `json:"demographics"`
	Psychographics string   `json:"psychographics"`
	PainPoints     []string `json:"painPoints"`
	Desires        []string `json:"desires"`
	Fears          []string `json:"fears"`
	Objections     []string `json:"objections"`
}

// UserTypology is one behavioral buyer segment. Immutable once generated;
// users select one during script creation, they never edit it.
type UserTypology struct {
	TypologyName     string `json:"typologyName"`
	Mindset          string `json:"mindset"`
	CorePain         string `json:"corePain"`
	CoreDesire       string `json:"coreDesire"`
	BuyingTrigger    string `json:"buyingTrigger"`
	BestContentAngle string `json:"bestContentAngle"`
	CTAStyle         string `json:"ctaStyle"`
}

type OfferAnalysis struct {
	CoreValue           string   `json:"coreValue"`
	EmotionalTriggers   []string `json:"emotionalTriggers"`
	LogicalBenefits     []string `json:"logicalBenefits"`
	UniqueSellingPoints []string `json:"uniqueSellingPoints"`
	GuaranteeStrength   string   `json:"guaranteeStrength"`
	PromotionImpact     string   `json:"promotionImpact"`
}

type MarketingInsights struct {
	BuyingMotivation     string   `json:"buyingMotivation"`
	DecisionFactors      []string `json:"decisionFactors"`
	MessagingAngle       string   `json:"messagingAngle"`
	CallToAction         string   `json:"callToAction"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
}

type Recommendations struct {
	ContentStrategy  string `json:"contentStrategy"`
	ChannelStrategy  string `json:"channelStrategy"`
	TimingStrategy   string `json:"timingStrategy"`
	FollowUpStrategy string `json:"followUpStrategy"`
}
