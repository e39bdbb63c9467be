package ai

import "regexp"

// substitution rewrites one class of blocked terms to a safe equivalent.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Image prompts must not carry realism terms (they trigger safety blocks
// on illustration models) nor trademarked brand names. Replacements are
// themselves safe, so applying the table twice yields the same output.
var substitutions = []substitution{
	// realism terms
	{regexp.MustCompile(`(?i)ultra-realista|hiper-realista|realista|realistic|photorealistic|photo-realistic`), "stylized 3D render"},
	{regexp.MustCompile(`(?i)fotografia|foto|photo|photography|camera|lens|shot|clique|macro`), "illustration"},
	{regexp.MustCompile(`(?i)4k|8k|hd|high definition|detalhado|detailed`), "vibrant high quality"},

	// sodas
	{regexp.MustCompile(`(?i)Coca-Cola|Coca Cola|Coke|Coca`), "red soda cup"},
	{regexp.MustCompile(`(?i)Pepsi`), "blue soda cup"},
	{regexp.MustCompile(`(?i)Fanta`), "orange soda"},
	{regexp.MustCompile(`(?i)Guaraná|Guarana|Antarctica`), "golden soda"},
	{regexp.MustCompile(`(?i)Sprite|Soda Limão`), "lemon lime soda"},
	{regexp.MustCompile(`(?i)Refrigerante de cola`), "dark soda"},

	// chocolates and sweets
	{regexp.MustCompile(`(?i)Nutella`), "hazelnut cream"},
	{regexp.MustCompile(`(?i)Ovomaltine`), "chocolate malt"},
	{regexp.MustCompile(`(?i)KitKat|Kit Kat`), "chocolate wafer"},
	{regexp.MustCompile(`(?i)Kinder`), "milk chocolate"},
	{regexp.MustCompile(`(?i)M&M|Confeti`), "colorful chocolate candies"},
	{regexp.MustCompile(`(?i)Oreo|Negresco`), "chocolate sandwich cookie"},

	// sauces
	{regexp.MustCompile(`(?i)Heinz`), "ketchup bottle"},
	{regexp.MustCompile(`(?i)Hellmann's|Hellmanns`), "mayonnaise"},

	// fast food brands
	{regexp.MustCompile(`(?i)McDonald's|McDonalds|Mc Donalds`), "cheeseburger"},
	{regexp.MustCompile(`(?i)Burger King|BK`), "grilled burger"},
	{regexp.MustCompile(`(?i)Starbucks`), "coffee cup"},
	{regexp.MustCompile(`(?i)Heineken`), "green beer bottle"},
	{regexp.MustCompile(`(?i)Budweiser`), "red beer bottle"},
}

// SanitizeImagePrompt rewrites realism terms and brand names in a visual
// description so the image model accepts it. The function is idempotent.
func SanitizeImagePrompt(text string) string {
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	return text
}
