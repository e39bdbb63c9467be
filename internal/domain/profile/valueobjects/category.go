package valueobjects

// BusinessCategory classifies the kind of food business. Values keep the
// PT-BR display labels used on the public menu and in prompts.
type BusinessCategory string

const (
	CategoryRestaurante  BusinessCategory = "Restaurante"
	CategoryBar          BusinessCategory = "Bar/Boteco"
	CategoryPizzaria     BusinessCategory = "Pizzaria"
	CategoryHamburgueria BusinessCategory = "Hamburgueria"
	CategoryLanchonete   BusinessCategory = "Lanchonete"
	CategorySorveteria   BusinessCategory = "Sorveteria/Açaí"
	CategoryDoceria      BusinessCategory = "Confeitaria/Doceria"
	CategoryOutro        BusinessCategory = "Outro"
)

// ValidCategories enumerates the known business categories.
var ValidCategories = map[BusinessCategory]bool{
	CategoryRestaurante:  true,
	CategoryBar:          true,
	CategoryPizzaria:     true,
	CategoryHamburgueria: true,
	CategoryLanchonete:   true,
	CategorySorveteria:   true,
	CategoryDoceria:      true,
	CategoryOutro:        true,
}

// IsValid reports whether c is a known category.
func (c BusinessCategory) IsValid() bool {
	return ValidCategories[c]
}
