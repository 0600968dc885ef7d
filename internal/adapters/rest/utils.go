package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	// формируем объект ошибки
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteJSONValidationError отправляет 400 с разбивкой ошибок по полям запроса
func WriteJSONValidationError(w http.ResponseWriter, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   message,
		"details": details,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// parseString возвращает указатель на значение query-параметра или nil,
// если параметр не передан. Пустая строка считается заданным значением.
func parseString(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	value := query.Get(key)
	return &value
}

// parseInt возвращает указатель на числовое значение query-параметра.
// Непарсящееся значение трактуется как отсутствующий параметр.
func parseInt(query url.Values, key string) *int {
	if !query.Has(key) {
		return nil
	}
	value, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return nil
	}
	return &value
}

func parseInt64(query url.Values, key string) *int64 {
	if !query.Has(key) {
		return nil
	}
	value, err := strconv.ParseInt(query.Get(key), 10, 64)
	if err != nil {
		return nil
	}
	return &value
}
