// Package angles holds the fixed catalog of persuasion strategies used to
// frame generated scripts. Angles are static reference data, never stored
// per client; saved scripts reference them by title.
package angles

// Angle is one named persuasion/structure strategy.
type Angle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Content is the catalog shown on the content plan.
var Content = []Angle{
	{
		Title:       "Problem–Solution",
		Icon:        "💡",
		Description: "Open with one very real daily problem Cambodians face and sit inside that stress moment so viewers immediately relate. Then naturally show how the product or service removed that pain and made daily life calmer. Best for: Cold audience, fast clarity, instant relevance.",
		Color:       "#3b82f6",
	},
	{
		Title:       "Curiosity",
		Icon:        "❓",
		Description: "Create an information gap by showing or saying something incomplete, strange, or unexpected. Make people pause because they feel confused or curious and want the answer. Best for: Strong hooks in the first 1–3 seconds.",
		Color:       "#8b5cf6",
	},
	{
		Title:       "Price Anchoring",
		Icon:        "⚓",
		Description: "Mention a more expensive, risky, or tiring alternative that Cambodians already know, then introduce your option so it feels smarter and more reasonable without saying cheap. Best for: Selling value without discounts.",
		Color:       "#10b981",
	},
	{
		Title:       "Promotion",
		Icon:        "🎁",
		Description: "Casually bring up a limited deal, bonus, or special condition as if sharing a useful tip with a friend, not announcing a sale. Best for: Short campaigns and promo periods.",
		Color:       "#ef4444",
	},
	{
		Title:       "Urgency",
		Icon:        "⏰",
		Description: "Create urgency by showing what people might lose or miss if they wait, using time, availability, or personal regret instead of pressure. Best for: Moving hesitant buyers.",
		Color:       "#f59e0b",
	},
	{
		Title:       "Feedback",
		Icon:        "⭐",
		Description: "Use real comments, inbox messages, or reactions from Cambodian customers and respond naturally like chatting back. Best for: Trust, relatability, and social proof.",
		Color:       "#6366f1",
	},
	{
		Title:       "Before–After",
		Icon:        "🌗",
		Description: "Clearly show the emotional or lifestyle difference before and after using the product or service, focusing on relief and confidence. Best for: Skincare, service results, lifestyle change.",
		Color:       "#ec4899",
	},
	{
		Title:       "Person A vs Person B",
		Icon:        "👥",
		Description: "Compare two people facing the same situation but making different choices, leading to different outcomes. Let viewers judge for themselves. Best for: Behavior change content.",
		Color:       "#14b8a6",
	},
	{
		Title:       "Pattern Interruption",
		Icon:        "⚡",
		Description: "Start with something visually or verbally unexpected that doesn’t feel like an ad, forcing people to stop scrolling. Best for: High-competition niches.",
		Color:       "#f97316",
	},
	{
		Title:       "Reply to Comment",
		Icon:        "💬",
		Description: "Turn a real comment or doubt into content and answer it honestly and calmly, like talking to one person. Best for: Engagement and credibility.",
		Color:       "#06b6d4",
	},
	{
		Title:       "Customer Testimonial",
		Icon:        "🗣️",
		Description: "Let a real customer share their experience in their own words, even if imperfect. Authenticity matters more than polish. Best for: Warm audience conversion.",
		Color:       "#8b5cf6",
	},
	{
		Title:       "Storytelling",
		Icon:        "📖",
		Description: "Tell a relatable real-life story with a clear struggle, turning point, and outcome where the product fits naturally into daily life. Best for: Emotional connection.",
		Color:       "#3b82f6",
	},
	{
		Title:       "Relatable Struggle",
		Icon:        "🤝",
		Description: "Talk about a common frustration Cambodians experience but rarely say out loud, making viewers feel seen and understood. Best for: Emotional resonance.",
		Color:       "#10b981",
	},
	{
		Title:       "Breaking False Beliefs",
		Icon:        "🔨",
		Description: "Call out a common wrong belief stopping people from buying and gently replace it with real-life experience. Best for: Unlocking hesitation.",
		Color:       "#ef4444",
	},
	{
		Title:       "Speed & Ease",
		Icon:        "🚀",
		Description: "Show how quick, simple, or effortless it is to get results, reducing fear of complexity. Best for: Busy or lazy buyers.",
		Color:       "#f59e0b",
	},
	{
		Title:       "Make It a Method",
		Icon:        "🔢",
		Description: "Turn your solution into a simple named routine or method that feels easy to remember and repeat. Best for: Authority and memorability.",
		Color:       "#6366f1",
	},
	{
		Title:       "Compounding Consequences",
		Icon:        "📉",
		Description: "Show how ignoring the problem slowly creates bigger stress, cost, or regret over time, without scaring people. Best for: Soft fear motivation.",
		Color:       "#ec4899",
	},
	{
		Title:       "The Great Paradox",
		Icon:        "🔄",
		Description: "Say something that sounds opposite or wrong at first, then explain why it’s actually true in real life. Best for: Standing out and rethinking.",
		Color:       "#14b8a6",
	},
	{
		Title:       "Compare the Alternatives",
		Icon:        "⚖️",
		Description: "Compare your solution with common options Cambodians already use and show why those options are tiring, risky, or inconvenient. Best for: Decision-stage buyers.",
		Color:       "#f97316",
	},
	{
		Title:       "Mistake Angle",
		Icon:        "❌",
		Description: "Highlight common mistakes people make before or after buying, speaking from experience, not blame. Best for: Education and positioning.",
		Color:       "#06b6d4",
	},
	{
		Title:       "Myth vs Reality",
		Icon:        "🔮",
		Description: "Expose a popular myth and replace it with a grounded, real-life truth that viewers can accept. Best for: Skeptical audiences.",
		Color:       "#8b5cf6",
	},
	{
		Title:       "Behind the Scenes (BTS)",
		Icon:        "🎥",
		Description: "Show the real process, daily work, testing, or packing to prove you’re real and transparent. Best for: Humanizing your brand.",
		Color:       "#3b82f6",
	},
	{
		Title:       "Authority / Credibility",
		Icon:        "📜",
		Description: "Show why people should trust you through experience, results, or repetition, not titles or claims. Best for: High-trust offers.",
		Color:       "#10b981",
	},
	{
		Title:       "Social Proof Stack",
		Icon:        "📚",
		Description: "Stack multiple small proofs like comments, results, users, or reactions in one video to build confidence quickly. Best for: Strong conversion.",
		Color:       "#ef4444",
	},
	{
		Title:       "Objection Handling",
		Icon:        "🛡️",
		Description: "Address common fears like price, trust, or difficulty directly and calmly, then remove them one by one. Best for: Closing buyers.",
		Color:       "#f59e0b",
	},
	{
		Title:       "Use Case / Scenario",
		Icon:        "🎭",
		Description: "Show exactly who this is for and when it’s used in daily Cambodian life so viewers self-identify fast. Best for: Audience clarity.",
		Color:       "#6366f1",
	},
	{
		Title:       "POV Angle",
		Icon:        "👁️‍🗨️",
		Description: "Film from a first-person point of view so the viewer feels like they are living the moment themselves. Best for: Reels and TikTok virality.",
		Color:       "#ec4899",
	},
	{
		Title:       "Transformation Journey",
		Icon:        "🏔️",
		Description: "Show gradual improvement over time instead of instant results to feel realistic and trustworthy. Best for: Long-term trust.",
		Color:       "#14b8a6",
	},
	{
		Title:       "Scarcity",
		Icon:        "💎",
		Description: "Limit quantity, time, or access in a calm way so it feels exclusive, not pushy. Best for: Action-driven content.",
		Color:       "#f97316",
	},
	{
		Title:       "Founder / Personal Story",
		Icon:        "👤",
		Description: "Share why you started, what problem you personally experienced, and why it mattered. Best for: Brand loyalty.",
		Color:       "#06b6d4",
	},
	{
		Title:       "Call-Out / Direct Address",
		Icon:        "📢",
		Description: "Speak directly to a very specific type of person so they feel personally called out. Best for: High relevance and stopping scroll.",
		Color:       "#8b5cf6",
	},
}

// Branding is the smaller catalog used for viral/branding scripts.
var Branding = []Angle{
	{
		Title:       "The Tutorial Angle",
		Description: "Showing a step-by-step process, framework, or acronym",
		Icon:        "📚",
		Color:       "#297fb2",
	},
	{
		Title:       "The Comparison Angle",
		Description: "Compare different actions, methods, or products and their results",
		Icon:        "⚖️",
		Color:       "#059669",
	},
	{
		Title:       "The Myth Bust / Common Mistake Angle",
		Description: "Share myths or mistakes in your niche and correct them",
		Icon:        "💥",
		Color:       "#dc2626",
	},
	{
		Title:       "The Do's vs. Don'ts Angle",
		Description: "Show the right and wrong ways to do something",
		Icon:        "✅",
		Color:       "#ea580c",
	},
	{
		Title:       "The Tip / Hack Angle",
		Description: "Show a one-off niche tip, lesson, or hack",
		Icon:        "💡",
		Color:       "#ca8a04",
	},
	{
		Title:       "The Transformation Angle",
		Description: "Show a client or personal before-and-after result",
		Icon:        "✨",
		Color:       "#7c3aed",
	},
	{
		Title:       "The Challenge Angle",
		Description: "Complete a niche-related challenge",
		Icon:        "🏆",
		Color:       "#db2777",
	},
}

// FindContent looks up a content angle by its title.
func FindContent(title string) (Angle, bool) {
	return find(Content, title)
}

// FindBranding looks up a branding angle by its title.
func FindBranding(title string) (Angle, bool) {
	return find(Branding, title)
}

func find(catalog []Angle, title string) (Angle, bool) {
	for _, a := range catalog {
		if a.Title == title {
			return a, true
		}
	}
	return Angle{}, false
}
