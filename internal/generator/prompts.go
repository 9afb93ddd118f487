package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/models"
)

// The prompt texts below are versioned contracts with the model: the exact
// wording, structure markers, and JSON field names steer the output, and
// downstream code reads the parsed fields by name. Edit with care.

const immersionPromptTmpl = `Act as a world-class Direct Response Marketing Strategist and Consumer Psychologist.

Transform the following raw product data (provided in Khmer) into a comprehensive "Offer, Avatar & User Typology Immersion Research" report.

IMPORTANT:
- The entire response MUST be returned as a valid JSON object.
- ALL string values in the JSON MUST be written in high-quality, professional Khmer language.
- Be realistic, behavior-based, and conversion-focused.
- Avoid generic or theoretical explanations.

RAW DATA (KHMER):
1. Product Name / Country / Price: %s
2. Problems Solved: %s
3. Target Audience: %s
4. Warranty: %s
5. Promotion: %s
6. Differentiation: %s
7. Competitors: %s

Your goal is to deeply understand how different types of users THINK, FEEL, and DECIDE to buy.
Focus on psychological drivers, objections, and emotional triggers—especially in short-form video and social media contexts.

Return a JSON object with the following structure (ALL CONTENT IN KHMER):

{
  "avatarProfile": {
    "demographics": "string (age range, gender, location, income level, lifestyle context)",
    "psychographics": "string (beliefs, values, attitudes, habits, digital behavior)",
    "painPoints": ["string", "string", "string"],
    "desires": ["string", "string", "string"],
    "fears": ["string", "string", "string"],
    "objections": ["string", "string", "string"]
  },

  "userTypologies": [%s
  ],

  "offerAnalysis": {
    "coreValue": "string",
    "emotionalTriggers": ["string", "string", "string"],
    "logicalBenefits": ["string", "string", "string"],
    "uniqueSellingPoints": ["string", "string", "string"],
    "guaranteeStrength": "string",
    "promotionImpact": "string"
  },

  "marketingInsights": {
    "buyingMotivation": "string",
    "decisionFactors": ["string", "string", "string"],
    "messagingAngle": "string",
    "callToAction": "string",
    "competitiveAdvantage": "string"
  },

  "recommendations": {
    "contentStrategy": "string",
    "channelStrategy": "string",
    "timingStrategy": "string",
    "followUpStrategy": "string"
  }
}`

const typologyStubFirst = `
    {
      "typologyName": "string (clear behavioral name)",
      "mindset": "string (how this user thinks when scrolling)",
      "corePain": "string (main problem or frustration)",
      "coreDesire": "string (main emotional or practical desire)",
      "buyingTrigger": "string (what finally pushes them to buy)",
      "bestContentAngle": "string (most effective marketing angle)",
      "ctaStyle": "string (best CTA tone: urgency, reassurance, soft, direct, etc.)"
    }`

const typologyStub = `,
    {
      "typologyName": "string",
      "mindset": "string",
      "corePain": "string",
      "coreDesire": "string",
      "buyingTrigger": "string",
      "bestContentAngle": "string",
      "ctaStyle": "string"
    }`

// typologySchemaStubs renders the userTypologies array skeleton: one
// annotated entry followed by eleven plain ones, asking the model for a full
// set of twelve segments.
func typologySchemaStubs() string {
	var b strings.Builder
	b.WriteString(typologyStubFirst)
	for i := 1; i < maxTypologies; i++ {
		b.WriteString(typologyStub)
	}
	return b.String()
}

func buildImmersionPrompt(client *models.Client) string {
	productInfo := fmt.Sprintf("%s / %s / %s", client.ProductName, client.Country, client.Price)
	return fmt.Sprintf(immersionPromptTmpl,
		productInfo,
		strings.Join(client.Problems, ", "),
		client.TargetCustomers,
		client.Warranty,
		client.Promotion,
		client.Uniqueness,
		"N/A", // competitors: not captured by the client form yet
		typologySchemaStubs(),
	)
}

const typologyContextTmpl = `

TARGET USER TYPOLOGY (FOCUS ON THIS SPECIFIC AUDIENCE):
Typology Name: %s
Mindset: %s
Core Pain: %s
Core Desire: %s
Buying Trigger: %s
Best Content Angle: %s
CTA Style: %s

IMPORTANT: You MUST craft this %s specifically for this typology. Use their exact mindset, pain point, and desire. Follow their preferred CTA style%s.
`

func typologyContext(t *models.UserTypology, kind, tail string) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf(typologyContextTmpl,
		t.TypologyName, t.Mindset, t.CorePain, t.CoreDesire,
		t.BuyingTrigger, t.BestContentAngle, t.CTAStyle,
		kind, tail,
	)
}

const guidanceContextTmpl = `

USER'S CONTENT GUIDANCE (MUST FOLLOW):
%s

⚠️ CRITICAL: Respect the user's guidance above. If they want something included, include it naturally. If they want something excluded, do NOT mention it at all.
`

func guidanceContext(guidance string) string {
	if guidance == "" {
		return ""
	}
	return fmt.Sprintf(guidanceContextTmpl, guidance)
}

const scriptPromptTmpl = `Role:
You are a Khmer product or service content creator and social media storyteller who deeply understands Cambodian buying psychology, especially fear, peace of mind, convenience, modern lifestyle, social status, and daily-life stress. You think like a real Cambodian buyer, not a marketer.

Task:
Create a Khmer script for a Facebook Reel or TikTok (20–35 seconds) that feels real, raw, and authentic, like a casual video filmed during real daily life at home, borey, condo, shop, office, or outside, and later added with voice-over.
The goal is to softly sell [PRODUCT NAME: %s] without sounding like selling at all.
The video must feel like sharing a real personal experience with a close friend.

Marketing Angle Context (VERY IMPORTANT):
Angle Title: %s
Angle Description: %s

You MUST follow the angle description when deciding:
1.  **Colloquial & Conversational:** Use spoken Khmer slang (ហាស, ហ្មង, អត់, ម៉ោ, ណ៎ា,បងៗ,បងប្អូនយើង, មិនចឹងអី). Do NOT use formal/news-reporter Khmer.
2.  **High Energy & Enthusiastic:** Sound like a best friend sharing a secret tip.
3.  **Persuasive:** Focus on speed of results (e.g., "in 3 days") and sensory details (texture, feeling).
4.  **Script angles** : %s (%s)
%s%s
Client/Product Data:
Product: %s
Target Customers: %s
Problem Solved: %s
Uniqueness: %s
Warranty/Guarantee: %s
Promotion: %s

Immersion Research Context:
%s

STYLE & TONE:
• Storytelling flow (beginning → problem → moment → product/service → result)
• Relatable, slightly funny, real-life stress
• Natural spoken Khmer (street Khmer, not formal)
• Sounds spontaneous, human, slightly imperfect
• Short, punchy sentences
• Conversational rhythm with natural pauses
• Emotional, believable, and grounded

STRUCTURE (ANGLE-DRIVEN):

1. 🔥 HOOK (First 2–3 seconds)
Create the hook STRICTLY based on the selected marketing angle:
- focus on the result of %s may get after using product.

2. 💚 PRODUCT / SERVICE MOMENT (Soft Sell)
Introduce %s naturally according to the angle.%s
No technical specs.
Mention only ONE simple benefit.
Focus on relief, ease, or peace of mind.

3. 🎬 STORY / PAIN POINT
Develop the story according to the angle logic.%s
Stay natural and conversational.
Use real Cambodian habits, stress, or situations.
Light humor or exaggeration is allowed.


4. 🤔 DOUBT → TURNING POINT → MICRO PROOF
Show hesitation first (price, trust, complexity, fear).%s
Flip softly using one believable moment:
• First-time use
• Family reaction
• Daily-life convenience
• Feeling calmer or more confident

5. A strong recommendation to comment or share or buy now (soft CTA, not hard selling)
IMPORTANT RULES:
.Hook->Product/Service Momoment
• Write fully in Khmer language only
• No emojis, no hashtags, no explanations
• No obvious sales language
• No long sentences
• Must sound like real voice-over (filmed first, scripted later)
• Must feel filmed first, scripted later
• Avoid technical specs and over-claiming

Final Output:
Generate ONE high-retention Khmer Reel (20-30s) or TikTok script that strictly follows the selected marketing angle and feels real, human, and trustworthy.
`

const corePainFocusTmpl = `
⚠️ FOCUS: The story MUST revolve around the typology's CORE PAIN: "%s"
Make them feel seen, understood, and like you're inside their head.`

const buyingTriggerTmpl = `
⚠️ TRIGGER MOMENT: Address their BUYING TRIGGER: "%s"
This is what pushes them over the edge—use it wisely.`

func buildScriptPrompt(client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) string {
	var typologyName, corePainFocus, triggerMoment string
	if typology != nil {
		typologyName = typology.TypologyName
		corePainFocus = fmt.Sprintf(corePainFocusTmpl, typology.CorePain)
		triggerMoment = fmt.Sprintf(buyingTriggerTmpl, typology.BuyingTrigger)
	}

	return fmt.Sprintf(scriptPromptTmpl,
		client.ProductName,
		angle.Title,
		angle.Description,
		angle.Title,
		angle.Description,
		typologyContext(typology, "script", ""),
		guidanceContext(guidance),
		client.ProductName,
		client.TargetCustomers,
		strings.Join(client.Problems, ", "),
		client.Uniqueness,
		client.Warranty,
		client.Promotion,
		immersionJSON(client),
		typologyName,
		client.ProductName,
		typologyName,
		corePainFocus,
		triggerMoment,
	)
}

const saleScriptPromptTmpl = `
ROLE:
Act as an expert Khmer Content Creator and Copywriter for TikTok and Facebook Reels. You specialize in "User Generated Content" (UGC) scripts that go viral in Cambodia.
TASK:
Create ONE viral video script (20-30 seconds) designed to hook viewers instantly and drive sales through "friend-to-friend" persuasion.
INPUT DATA:
Product Name: %s
Target Problems: %s
Key Features/Origin: %s
Promise/Guarantee: %s
Current Promotion: %s

Your writing style must be:
1.  **Colloquial & Conversational:** Use spoken Khmer slang (ហាស, មែនទែន, ហ្មង, អត់, ម៉ោ, ណ៎ា,បងៗ,បងប្អូនយើង, មិនចឹងអី). Do NOT use formal/news-reporter Khmer.
2.  **High Energy & Enthusiastic:** Sound like a best friend sharing a secret tip.
3.  **Persuasive:** Focus on speed of results (e.g., "in 3 days") and sensory details (texture, feeling).
4. Script angles : %s (%s)
%s%s
You will generate a 40-55 second video script following this structure:
* **Hook:** Create the hook STRICTLY based on the selected marketing angle:
- focus on the result of %s may get after using product.
* **Solution:** Introduce the product%s. Mention its texture, color, or origin (e.g., Korean, Natural).
* **Agitation:** Describe the pain point vividly (3 second only)
* **Promise/Proof:** How fast does it work? How does it feel?%s
* **CTA:** A strong recommendation to comment or share or buy now

FINAL OUTPUT RULES:
• Write in Khmer language (Unicode) ONLY.
• Do NOT use emojis.
• Do NOT include timestamps or scene descriptions.
• Return ONLY the spoken dialogue text.
`

const coreDesireTmpl = `
  ⚠️ Position as the answer to their core desire: "%s"`

const saleTriggerTmpl = `
  ⚠️ Trigger their buying decision with: "%s"`

func buildSaleScriptPrompt(client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) string {
	var typologyName, desireFocus, triggerFocus string
	if typology != nil {
		typologyName = typology.TypologyName
		desireFocus = fmt.Sprintf(coreDesireTmpl, typology.CoreDesire)
		triggerFocus = fmt.Sprintf(saleTriggerTmpl, typology.BuyingTrigger)
	}

	return fmt.Sprintf(saleScriptPromptTmpl,
		client.ProductName,
		strings.Join(client.Problems, ", "),
		client.Uniqueness,
		client.Warranty,
		client.Promotion,
		angle.Title,
		angle.Description,
		typologyContext(typology, "sale script", " to maximize conversion"),
		guidanceContext(guidance),
		typologyName,
		desireFocus,
		triggerFocus,
	)
}

const brandingTopicsPromptTmpl = `
Based on the following product or industry information, generate 5 creative and engaging BRANDING video script topics in Khmer language for TikTok, Facebook Reels, or YouTube Shorts.

Content Purpose:
- Focus on education, advice, awareness, or useful insights related to the product, its usage, or the broader industry.
- The content should NOT feel like direct selling.
- The product can appear naturally as context, example, or experience — not as a hard promotion.

Tone & Style:
- Speak like a real Cambodian talking to a friend.
- Simple Khmer words, casual, emotional, and believable.
- Avoid textbook explanations and corporate marketing language.
- Sound helpful, honest, and relatable.

Content Angles to Consider:
- Common mistakes people make in this category
- Things sellers rarely tell customers
- Simple tips or habits that improve results
- Myths vs reality
- Advice you'd give to a close friend
- Before/after mindset or behavior change
- Industry truths that affect everyday people

Product Information:
- Product Name: %s
- Country: %s
- Price: %s
- Target Customers: %s
- Problems Solved: %s
- Uniqueness: %s
- Warranty: %s
- Promotion: %s

Each topic should be short (3-7 words in Khmer), engaging, and focused on different aspects like:
1. Product benefits
2. Customer pain points
3. Lifestyle transformation
4. Social proof/testimonials
5. Special promotions or features

Return ONLY a JSON array of 5 topic strings in Khmer. Example format:
["ប្រធានបទទី១", "ប្រធានបទទី២", "ប្រធានបទទី៣", "ប្រធានបទទី៤", "ប្រធានបទទី៥"]`

func buildBrandingTopicsPrompt(client *models.Client) string {
	return fmt.Sprintf(brandingTopicsPromptTmpl,
		client.ProductName,
		client.Country,
		client.Price,
		client.TargetCustomers,
		strings.Join(client.Problems, ", "),
		client.Uniqueness,
		client.Warranty,
		client.Promotion,
	)
}

const brandingScriptPromptTmpl = `Please create a script for a 30-second short-form video (e.g., for TikTok/Reels/Shorts) in Khmer Language.

The video should follow a fast-paced, list-style format, highlighting three to five distinct points. Each benefit/tip should be introduced quickly and explained in 4-5 seconds max.

Topic: %s

%s

Format Requirements:
1. A powerful attention-grabbing opening line%s
2. First benefit/tip with brief explanation
3. Second benefit/tip with brief explanation
4. Third benefit/tip with brief explanation
5. (optional according to the topic ) Fourth benefit/tip with brief explanation
6. (optional according to the topic ) Fifth benefit/tip with brief explanation
7. Strong call-to-action

Make it energetic, direct, and use simple Khmer language that resonates with the target audience. Focus on the product's unique value proposition and how it solves customer problems.

Return ONLY the script text in Khmer, formatted with clear sections.`

const brandingAngleContextTmpl = `
Marketing Angle Context (VERY IMPORTANT):
Angle Title: %s
Angle Description: %s

You MUST follow the angle description when deciding:
• How the HOOK is written
• How the story is framed
• How the content is structured and presented
`

func buildBrandingScriptPrompt(topic string, angle *angles.Angle) string {
	var angleContext, openingLine string
	if angle != nil {
		angleContext = fmt.Sprintf(brandingAngleContextTmpl, angle.Title, angle.Description)
		openingLine = fmt.Sprintf(" (based on the %s angle)", angle.Title)
	}
	return fmt.Sprintf(brandingScriptPromptTmpl, topic, angleContext, openingLine)
}

// immersionJSON serializes the client's stored immersion report for prompt
// context, or "{}" when none has been generated yet.
func immersionJSON(client *models.Client) string {
	if client.ImmersionData == nil {
		return "{}"
	}
	data, err := json.Marshal(client.ImmersionData)
	if err != nil {
		return "{}"
	}
	return string(data)
}
