package handlers

import "net/http"

// LawyersHandler godoc
// @Summary      Search the lawyer directory
// @Description  Case-insensitive substring filter over the static directory; empty queries match everything.
// @Tags         Lawyers
// @Produce      json
// @Param        location        query  string  false  "Substring matched against city or state"
// @Param        specialization  query  string  false  "Substring matched against specialization"
// @Success      200  {array}   lawyers.Record
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/lawyers [get]
func LawyersHandler(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	specialization := r.URL.Query().Get("specialization")

	records := handlerInstance.directory.Search(location, specialization)
	writeJsonResponse(w, http.StatusOK, records)
}
