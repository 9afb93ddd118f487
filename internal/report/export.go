// Package report renders immersion research reports as downloadable plain
// text, section labels bilingual in English and Khmer.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/khmercontent/reelkit/internal/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// Filename returns the suggested download name for a client's report.
func Filename(productName string) string {
	return "Avatar_Immersion_" + whitespace.ReplaceAllString(productName, "_") + ".txt"
}

// Export renders the full report. Returns an empty string when the client
// has no immersion data.
func Export(client *models.Client, now time.Time) string {
	im := client.ImmersionData
	if im == nil {
		return ""
	}

	lines := []string{
		"CUSTOMER AVATAR IMMERSION REPORT",
		"================================",
		"Product: " + client.ProductName,
		"Country: " + client.Country,
		"Price: " + client.Price,
		"Date: " + now.Format("1/2/2006"),
		"\n",
		"I. AVATAR PROFILE (ប្រវត្តិរូប AVATAR)",
		"------------------------------------",
		"Demographics (ប្រជាសាស្ត្រ): " + im.AvatarProfile.Demographics,
		"Psychographics (ចិត្តសាស្ត្រ): " + im.AvatarProfile.Psychographics,
		"Pain Points (ចំណុចឈឺចាប់):",
	}
	lines = append(lines, bullets(im.AvatarProfile.PainPoints)...)
	lines = append(lines, "Desires (បំណងប្រាថ្នា):")
	lines = append(lines, bullets(im.AvatarProfile.Desires)...)
	lines = append(lines, "Fears (ការភ័យខ្លាច):")
	lines = append(lines, bullets(im.AvatarProfile.Fears)...)
	lines = append(lines, "Objections (ការជំទាស់):")
	lines = append(lines, bullets(im.AvatarProfile.Objections)...)

	lines = append(lines,
		"\n",
		"II. OFFER ANALYSIS (ការវិភាគការផ្តល់ជូន)",
		"---------------------------------------",
		"Core Value (តម្លៃស្នូល): "+im.OfferAnalysis.CoreValue,
		"Emotional Triggers (កត្តាអារម្មណ៍):",
	)
	lines = append(lines, bullets(im.OfferAnalysis.EmotionalTriggers)...)
	lines = append(lines, "Logical Benefits (អត្ថប្រយោជន៍តក្កវិជ្ជា):")
	lines = append(lines, bullets(im.OfferAnalysis.LogicalBenefits)...)
	lines = append(lines, "Unique Selling Points (ចំណុចលក់តែមួយគត់):")
	lines = append(lines, bullets(im.OfferAnalysis.UniqueSellingPoints)...)
	lines = append(lines,
		"Guarantee Strength (កម្លាំងធានា): "+im.OfferAnalysis.GuaranteeStrength,
		"Promotion Impact (ផលប៉ះពាល់ប្រម៉ូសិន): "+im.OfferAnalysis.PromotionImpact,
	)

	lines = append(lines,
		"\n",
		"III. MARKETING INSIGHTS (ការយល់ដឹងទីផ្សារ)",
		"----------------------------------------",
		"Buying Motivation (ការលើកទឹកចិត្តទិញ): "+im.MarketingInsights.BuyingMotivation,
		"Decision Factors (កត្តាសម្រេចចិត្ត):",
	)
	lines = append(lines, bullets(im.MarketingInsights.DecisionFactors)...)
	lines = append(lines,
		"Messaging Angle (មុំសារ): "+im.MarketingInsights.MessagingAngle,
		"Call to Action (ការអំពាវនាវឱ្យធ្វើសកម្មភាព): "+im.MarketingInsights.CallToAction,
		"Competitive Advantage (អត្ថប្រយោជន៍ប្រកួតប្រជែង): "+im.MarketingInsights.CompetitiveAdvantage,
	)

	lines = append(lines,
		"\n",
		"IV. RECOMMENDATIONS (អនុសាសន៍)",
		"----------------------------",
		"Content Strategy (យុទ្ធសាស្ត្រមាតិកា): "+im.Recommendations.ContentStrategy,
		"Channel Strategy (យុទ្ធសាស្ត្រឆានែល): "+im.Recommendations.ChannelStrategy,
		"Timing Strategy (យុទ្ធសាស្ត្រពេលវេលា): "+im.Recommendations.TimingStrategy,
		"Follow-up Strategy (យុទ្ធសាស្ត្រតាមដាន): "+im.Recommendations.FollowUpStrategy,
	)

	if len(im.UserTypologies) > 0 {
		lines = append(lines,
			"\n",
			"V. USER TYPOLOGIES (អ្នកប្រើប្រាស់)",
			"-----------------------------------",
		)
		for i, t := range im.UserTypologies {
			lines = append(lines,
				fmt.Sprintf("\n%d. %s", i+1, t.TypologyName),
				"   Mindset (របៀបគិត): "+t.Mindset,
				"   Core Pain (ចំណុចឈឺចាប់ស្នូល): "+t.CorePain,
				"   Core Desire (បំណងប្រាថ្នាស្នូល): "+t.CoreDesire,
				"   Buying Trigger (កត្តាទិញ): "+t.BuyingTrigger,
				"   Best Content Angle (មុំមាតិកាល្អបំផុត): "+t.BestContentAngle,
				"   CTA Style (ស្ទីល CTA): "+t.CTAStyle,
			)
		}
	}

	return strings.Join(lines, "\n")
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}
