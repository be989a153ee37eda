package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active staff user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:        uuid.New(),
		FullName:  "Staff " + suffix,
		Email:     "staff-" + suffix + "@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, full_name, email, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.FullName, u.Email, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedComplainant creates a complainant. An empty name gets a generated one.
func SeedComplainant(t *testing.T, pool *pgxpool.Pool, fullName string) domain.Complainant {
	t.Helper()

	suffix := uniqueSuffix()
	if fullName == "" {
		fullName = "Citizen " + suffix
	}
	c := domain.Complainant{
		ID:         uuid.New(),
		FullName:   fullName,
		NationalID: "NID-" + uuid.New().String(),
		Phone:      "+20" + suffix,
		CreatedAt:  now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO complainants (id, full_name, national_id, phone, email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.FullName, c.NationalID, c.Phone, c.Email, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComplainant: %v", err)
	}

	return c
}

// SeedComplaintType creates an active complaint type with a unique name.
func SeedComplaintType(t *testing.T, pool *pgxpool.Pool) domain.ComplaintType {
	t.Helper()

	ct := domain.ComplaintType{
		ID:        uuid.New(),
		Name:      "Type " + uniqueSuffix(),
		IsActive:  true,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO complaint_types (id, name, description, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ct.ID, ct.Name, ct.Description, ct.IsActive, ct.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComplaintType: %v", err)
	}

	return ct
}

// ComplaintOpt customises a seeded complaint.
type ComplaintOpt func(*domain.Complaint)

// WithAssignee assigns the seeded complaint to a staff user.
func WithAssignee(id uuid.UUID) ComplaintOpt {
	return func(c *domain.Complaint) { c.AssignedToID = &id }
}

// WithStatus sets the initial status.
func WithStatus(s domain.ComplaintStatus) ComplaintOpt {
	return func(c *domain.Complaint) { c.Status = s }
}

// WithTitle sets the title.
func WithTitle(title string) ComplaintOpt {
	return func(c *domain.Complaint) { c.Title = title }
}

// WithDescription sets the description.
func WithDescription(d string) ComplaintOpt {
	return func(c *domain.Complaint) { c.Description = d }
}

// WithCreatedAt sets created_at, for ordering tests.
func WithCreatedAt(ts time.Time) ComplaintOpt {
	return func(c *domain.Complaint) { c.CreatedAt = ts; c.UpdatedAt = ts }
}

// SeedComplaint inserts a NEW complaint for the complainant and type.
func SeedComplaint(t *testing.T, pool *pgxpool.Pool, complainantID, typeID uuid.UUID, opts ...ComplaintOpt) domain.Complaint {
	t.Helper()

	ts := now()
	c := domain.Complaint{
		ID:            uuid.New(),
		ComplainantID: complainantID,
		TypeID:        typeID,
		Status:        domain.StatusNew,
		Title:         "Complaint " + uniqueSuffix(),
		Description:   "Broken street light",
		Location:      "Main street",
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	for _, opt := range opts {
		opt(&c)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO complaints (id, complainant_id, type_id, assigned_to_id, status, title, description, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.ComplainantID, c.TypeID, c.AssignedToID, string(c.Status),
		c.Title, c.Description, c.Location, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComplaint: %v", err)
	}

	return c
}
