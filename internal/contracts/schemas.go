package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы
	// Это нужно, чтобы схемы могли ссылаться друг на друга через `$ref`
	err := fs.WalkDir(schemasFS, "schemas/payloads", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemasFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemasFS, "schemas/payloads", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {

			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "schemas/payloads/inquiry-create/v1.json"
// в ключ вида "InquiryCreate/1.0.0".
func generateKeyFromPath(path string) string {

	trimmedPath := strings.TrimPrefix(path, "schemas/payloads/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return "" // Некорректный путь, возвращаем пустой ключ
	}

	caser := cases.Title(language.English)

	payloadNameParts := strings.Split(parts[0], "-")
	var payloadNameBuilder strings.Builder
	for _, p := range payloadNameParts {
		payloadNameBuilder.WriteString(caser.String(p))
	}
	payloadName := payloadNameBuilder.String()

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", payloadName, version)
}

// ValidationError содержит ошибки валидации по каждому полю запроса.
// Ключ карты - имя поля (JSON pointer без ведущего "/"), значение - причина.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "payload validation failed: " + strings.Join(parts, "; ")
}

// ValidatePayload принимает тело запроса и его метаданные и проверяет по схеме.
// При нарушении схемы возвращает *ValidationError с разбивкой по полям.
func ValidatePayload(payloadType, payloadVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", payloadType, payloadVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for payload '%s' version '%s' not found", payloadType, payloadVersion)
	}

	// Распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	// Валидировать уже распарсенные данные
	if err := schema.Validate(v); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("JSON schema validation failed: %w", err)
		}
		fields := make(map[string]string)
		collectFieldErrors(validationErr, fields)
		if len(fields) == 0 {
			fields["payload"] = validationErr.Message
		}
		return &ValidationError{Fields: fields}
	}

	return nil
}

// collectFieldErrors рекурсивно обходит дерево причин и собирает листовые
// ошибки в карту "поле -> сообщение". Для нарушений "required" у корня
// instance location пустой, поэтому имена полей извлекаются из текста ошибки.
func collectFieldErrors(ve *jsonschema.ValidationError, out map[string]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			if missing, ok := parseMissingProperties(ve.Message); ok {
				for _, name := range missing {
					if _, exists := out[name]; !exists {
						out[name] = "is required"
					}
				}
				return
			}
			field = "payload"
		}
		if _, exists := out[field]; !exists {
			out[field] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectFieldErrors(cause, out)
	}
}

// parseMissingProperties извлекает имена полей из сообщения вида
// "missing properties: 'firstName', 'email'".
func parseMissingProperties(message string) ([]string, bool) {
	const prefix = "missing properties: "
	if !strings.HasPrefix(message, prefix) {
		return nil, false
	}
	rest := strings.TrimPrefix(message, prefix)
	var names []string
	for _, part := range strings.Split(rest, ",") {
		name := strings.Trim(strings.TrimSpace(part), "'")
		if name != "" {
			names = append(names, name)
		}
	}
	return names, len(names) > 0
}
