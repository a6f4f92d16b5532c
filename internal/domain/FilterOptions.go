package domain

// FilterOptions representa os valores disponíveis para cada filtro.
// Trimestres dependem dos anos selecionados e subcategorias das categorias selecionadas.
type FilterOptions struct {
	Years         []int    `json:"years"`
	Quarters      []int    `json:"quarters"`
	Regions       []string `json:"regions"`
	Categories    []string `json:"categories"`
	SubCategories []string `json:"sub_categories"`
	Salespersons  []string `json:"salespersons"`
}
