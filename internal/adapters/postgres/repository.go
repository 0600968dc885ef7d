package postgres_adapter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// PostgresCatalogRepository - долговечная реализация порта хранилища.
// Подключается вместо in-memory варианта, когда задан DATABASE_URL;
// хендлеры об этой замене ничего не знают.
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalogRepository - конструктор.
func NewPostgresCatalogRepository(pool *pgxpool.Pool) (*PostgresCatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresCatalogRepository{pool: pool}, nil
}

// EnsureSchema применяет встроенную DDL-схему. Все выражения идемпотентны
// (CREATE TABLE IF NOT EXISTS), поэтому вызов при каждом старте безопасен.
func (r *PostgresCatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply catalog schema: %w", err)
	}
	return nil
}

const propertyColumns = `id, title, description, price, location, property_type,
	bedrooms, bathrooms, area, amenities, images, featured, available, created_at`

// --- Properties ---

func (r *PostgresCatalogRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY seq`
	return r.queryProperties(ctx, "ListProperties", query)
}

func (r *PostgresCatalogRepository) ListFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE featured ORDER BY seq`
	return r.queryProperties(ctx, "ListFeaturedProperties", query)
}

// SearchProperties транслирует заданные критерии в условия WHERE.
// Семантика та же, что у линейного прохода in-memory адаптера: И по всем
// заданным фильтрам, включительные границы цены, точное совпадение
// bedrooms/bathrooms, подстрока без учета регистра для location.
func (r *PostgresCatalogRepository) SearchProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties`
	var conditions []string
	var args []interface{}

	addCondition := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filters.PropertyType != nil {
		addCondition("property_type = $%d", *filters.PropertyType)
	}
	if filters.Location != nil {
		addCondition("location ILIKE $%d", "%"+*filters.Location+"%")
	}
	if filters.MinPrice != nil {
		addCondition("price >= $%d", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		addCondition("price <= $%d", *filters.MaxPrice)
	}
	if filters.Bedrooms != nil {
		addCondition("bedrooms = $%d", *filters.Bedrooms)
	}
	if filters.Bathrooms != nil {
		addCondition("bathrooms = $%d", *filters.Bathrooms)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY seq"

	return r.queryProperties(ctx, "SearchProperties", query, args...)
}

func (r *PostgresCatalogRepository) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		r.logQueryError(ctx, "GetProperty", query, err)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (r *PostgresCatalogRepository) CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	property := domain.Property{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Location:     input.Location,
		PropertyType: input.PropertyType,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Area:         input.Area,
		Amenities:    emptyIfNil(input.Amenities),
		Images:       emptyIfNil(input.Images),
		Featured:     derefBool(input.Featured, false),
		Available:    derefBool(input.Available, true),
		CreatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Price,
		property.Location, property.PropertyType, property.Bedrooms,
		property.Bathrooms, property.Area, property.Amenities, property.Images,
		property.Featured, property.Available, property.CreatedAt)
	if err != nil {
		r.logQueryError(ctx, "CreateProperty", query, err)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	return &property, nil
}

func (r *PostgresCatalogRepository) queryProperties(ctx context.Context, method, query string, args ...interface{}) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, method, query, err)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			r.logQueryError(ctx, method, query, err)
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		out = append(out, *property)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, method, query, err)
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}
	return out, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location,
		&p.PropertyType, &p.Bedrooms, &p.Bathrooms, &p.Area,
		&p.Amenities, &p.Images, &p.Featured, &p.Available, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// --- Inquiries ---

func (r *PostgresCatalogRepository) CreateInquiry(ctx context.Context, input domain.NewInquiry) (*domain.Inquiry, error) {
	inquiry := domain.Inquiry{
		ID:         uuid.NewString(),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Budget:     input.Budget,
		Interest:   input.Interest,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		CreatedAt:  time.Now().UTC(),
	}

	query := `INSERT INTO inquiries
		(id, first_name, last_name, email, phone, budget, interest, message, property_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		inquiry.ID, inquiry.FirstName, inquiry.LastName, inquiry.Email,
		inquiry.Phone, inquiry.Budget, inquiry.Interest, inquiry.Message,
		inquiry.PropertyID, inquiry.CreatedAt)
	if err != nil {
		r.logQueryError(ctx, "CreateInquiry", query, err)
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return &inquiry, nil
}

func (r *PostgresCatalogRepository) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	query := `SELECT id, first_name, last_name, email, phone, budget, interest,
		message, property_id, created_at FROM inquiries ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logQueryError(ctx, "ListInquiries", query, err)
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var out []domain.Inquiry
	for rows.Next() {
		var i domain.Inquiry
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.Phone,
			&i.Budget, &i.Interest, &i.Message, &i.PropertyID, &i.CreatedAt); err != nil {
			r.logQueryError(ctx, "ListInquiries", query, err)
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, "ListInquiries", query, err)
		return nil, fmt.Errorf("error during inquiries iteration: %w", err)
	}
	return out, nil
}

// --- Team members ---

func (r *PostgresCatalogRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	query := `SELECT id, name, role, image, bio, linkedin, twitter, display_order
		FROM team_members ORDER BY display_order, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logQueryError(ctx, "ListTeamMembers", query, err)
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var out []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Image, &m.Bio,
			&m.LinkedIn, &m.Twitter, &m.Order); err != nil {
			r.logQueryError(ctx, "ListTeamMembers", query, err)
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, "ListTeamMembers", query, err)
		return nil, fmt.Errorf("error during team members iteration: %w", err)
	}
	return out, nil
}

func (r *PostgresCatalogRepository) CreateTeamMember(ctx context.Context, input domain.NewTeamMember) (*domain.TeamMember, error) {
	member := domain.TeamMember{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Role:     input.Role,
		Image:    input.Image,
		Bio:      input.Bio,
		LinkedIn: input.LinkedIn,
		Twitter:  input.Twitter,
		Order:    derefInt(input.Order, 0),
	}

	query := `INSERT INTO team_members (id, name, role, image, bio, linkedin, twitter, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query, member.ID, member.Name, member.Role,
		member.Image, member.Bio, member.LinkedIn, member.Twitter, member.Order)
	if err != nil {
		r.logQueryError(ctx, "CreateTeamMember", query, err)
		return nil, fmt.Errorf("failed to insert team member: %w", err)
	}
	return &member, nil
}

// --- Testimonials ---

func (r *PostgresCatalogRepository) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	query := `SELECT id, name, role, content, image, rating, featured
		FROM testimonials ORDER BY seq`
	return r.queryTestimonials(ctx, "ListTestimonials", query)
}

func (r *PostgresCatalogRepository) ListFeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	query := `SELECT id, name, role, content, image, rating, featured
		FROM testimonials WHERE featured ORDER BY seq`
	return r.queryTestimonials(ctx, "ListFeaturedTestimonials", query)
}

func (r *PostgresCatalogRepository) CreateTestimonial(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error) {
	testimonial := domain.Testimonial{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Role:     input.Role,
		Content:  input.Content,
		Image:    input.Image,
		Rating:   derefInt(input.Rating, 5),
		Featured: derefBool(input.Featured, false),
	}

	query := `INSERT INTO testimonials (id, name, role, content, image, rating, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, testimonial.ID, testimonial.Name,
		testimonial.Role, testimonial.Content, testimonial.Image,
		testimonial.Rating, testimonial.Featured)
	if err != nil {
		r.logQueryError(ctx, "CreateTestimonial", query, err)
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return &testimonial, nil
}

func (r *PostgresCatalogRepository) queryTestimonials(ctx context.Context, method, query string) ([]domain.Testimonial, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logQueryError(ctx, method, query, err)
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var out []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Image,
			&t.Rating, &t.Featured); err != nil {
			r.logQueryError(ctx, method, query, err)
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		r.logQueryError(ctx, method, query, err)
		return nil, fmt.Errorf("error during testimonials iteration: %w", err)
	}
	return out, nil
}

func (r *PostgresCatalogRepository) logQueryError(ctx context.Context, method, query string, err error) {
	logger := contextkeys.LoggerFromContext(ctx)
	logger.WithFields(port.Fields{
		"component": "PostgresCatalogRepository",
		"method":    method,
	}).Error("Query failed", err, port.Fields{"query": query})
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func derefBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func derefInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
