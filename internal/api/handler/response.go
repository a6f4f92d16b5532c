package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz o erro de um caso de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao processar requisição")
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

// parseSelection monta a seleção a partir da query string. Cada filtro aceita
// valores repetidos ou separados por vírgula; ausente significa "Todos".
func parseSelection(r *http.Request) (domain.FilterSelection, error) {
	query := r.URL.Query()

	years, err := utils.ParseIntList(query, "year")
	if err != nil {
		return domain.FilterSelection{}, err
	}

	quarters, err := utils.ParseIntList(query, "quarter")
	if err != nil {
		return domain.FilterSelection{}, err
	}

	return domain.FilterSelection{
		Years:         years,
		Quarters:      quarters,
		Regions:       utils.ParseList(query, "region"),
		Categories:    utils.ParseList(query, "category"),
		SubCategories: utils.ParseList(query, "sub_category"),
		Salespersons:  utils.ParseList(query, "salesperson"),
	}, nil
}

// decodeSelection lê a seleção do corpo da requisição; corpo vazio equivale a "Todos"
func decodeSelection(r *http.Request) (domain.FilterSelection, error) {
	var selection domain.FilterSelection
	if r.Body == nil || r.ContentLength == 0 {
		return selection, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		// Corpo chunked vazio chega com ContentLength -1
		if errors.Is(err, io.EOF) {
			return domain.FilterSelection{}, nil
		}
		return domain.FilterSelection{}, errors.Wrap(err, "corpo da requisição inválido")
	}
	return selection, nil
}
