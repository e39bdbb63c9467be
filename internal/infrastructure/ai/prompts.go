package ai

import (
	"fmt"
	"strings"

	"chefviral/internal/application/generation/usecases"
	"chefviral/internal/domain/content"
	"chefviral/internal/domain/profile/valueobjects"
)

const systemInstruction = `
Você é uma IA especialista em Marketing Digital para Gastronomia no Brasil.
Seu nome é "Chef Viral".
Seu objetivo é gerar conteúdo altamente engajador, persuasivo e adequado ao "Tom de Voz" e "Categoria" do estabelecimento.

REGRAS DE OURO (COMPLIANCE):
1. NUNCA invente preços. Se citar preço, use EXATAMENTE o que está no cadastro de produtos. Se não souber, use "consulte valor".
2. Respeite o horário de funcionamento implícito (ex: não poste "Bom dia" para um bar noturno se for um post de happy hour).
3. Linguagem nativa PT-BR, usando gírias locais adequadas ao tom (ex: "Mano", "Galera", "Top" se for casual).
4. Emojis são essenciais. Use-os com inteligência.
5. Não prometa entregas grátis ou promoções absurdas a menos que especificado no prompt do usuário.

FORMATO DE SAÍDA:
Sempre retorne JSON puro.
`

func categoryPrompt(category valueobjects.BusinessCategory) string {
	switch category {
	case valueobjects.CategoryBar:
		return "Foque em happy hour, cerveja gelada, petiscos, futebol e encontro com amigos."
	case valueobjects.CategoryPizzaria:
		return "Foque em borda recheada, forno a lenha, domingo de pizza, delivery rápido e queijo derretendo."
	case valueobjects.CategoryHamburgueria:
		return "Foque em bacon crocante, carne suculenta, 'matar a fome', e fotos 'porn food'."
	case valueobjects.CategorySorveteria:
		return "Foque em refrescância, calor, sobremesa, cobertura extra e açaí."
	default:
		return "Foque em sabor, qualidade dos ingredientes e experiência do cliente."
	}
}

// buildCampaignPrompt assembles the user prompt: business facts, the
// active catalog as the single source of truth for prices, then the
// task block for the requested mode.
func buildCampaignPrompt(cmd usecases.CampaignCommand) string {
	var products strings.Builder
	for _, p := range cmd.Products {
		fmt.Fprintf(&products, "- %s (%s): R$ %.2f - %s\n", p.Name, p.Category, p.Price, p.Description)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `
EMPRESA: %s
CIDADE: %s
CATEGORIA: %s
TOM DE VOZ: %s
CONTATO: %s

CARDÁPIO ATIVO (FONTE DA VERDADE):
%s
CONTEXTO: %s
`, cmd.BusinessName, cmd.City, cmd.Category, cmd.Tone, cmd.Phone, products.String(), categoryPrompt(cmd.Category))

	switch cmd.Mode {
	case content.ModeWeeklyPack:
		b.WriteString(`
TAREFA: Crie um mini-pack (5 itens).
- 2 Posts Feed
- 2 Stories
- 1 Reels Script
- 1 Texto WhatsApp
`)
	case content.ModeDailyOffer:
		focus := cmd.CustomContext
		if focus == "" {
			focus = "Produto principal"
		}
		fmt.Fprintf(&b, `
TAREFA: Crie um BUNDLE DE OFERTA DO DIA (3 itens).
Item 1 (FEED): Legenda Instagram.
Item 2 (WHATSAPP): Mensagem Lista Transmissão.
Item 3 (STORY): Base para ARTE visual (ILUSTRAÇÃO 3D).
     - 'suggestion': Descrição visual LÚDICA e ESTILIZADA de "%s". Use termos como "cartoon", "3d render". PROIBIDO MARCAS.
     - 'hook': Título (Ex: "SÓ HOJE!").
     - 'caption': Preço/Subtítulo.
Produto Foco: %s.
`, focus, focusOrDefault(cmd.CustomContext))
	case content.ModeCustomerReply:
		fmt.Fprintf(&b, `
TAREFA: Responda: "%s".
Gere 3 opções de resposta e 1 ideia de post.
`, cmd.CustomContext)
	}

	return b.String()
}

func focusOrDefault(custom string) string {
	if custom == "" {
		return "Escolha o melhor produto"
	}
	return custom
}

// buildImagePrompt wraps a sanitized visual description in the fixed
// illustration style directives.
func buildImagePrompt(businessName, cleanSuggestion string) string {
	return fmt.Sprintf(`
Create a cute, high-quality 3D Marketing Illustration (Pixar style) for a food business named "%s".
Subject: %s.
Style: 3D Render, isometric, vibrant colors, soft studio lighting, clean solid color background.
Quality: Masterpiece, trending on artstation.
Restrictions: NO TEXT, NO TRADEMARKS, NO REALISTIC PHOTOS.
`, businessName, cleanSuggestion)
}
