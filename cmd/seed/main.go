package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklog-id/worklog-backend-go/internal/config"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type seedEmployee struct {
	Name            string
	Email           string
	Position        string
	SupervisorEmail string
}

// The sample organization is a three level tree: one head, two section
// leads, one staff member under each lead.
var seedEmployees = []seedEmployee{
	{Name: "Budi Santoso", Email: "budi.santoso@worklog.id", Position: "Kepala Dinas"},
	{Name: "Ahmad Wijaya", Email: "ahmad.wijaya@worklog.id", Position: "Kepala Bidang Perencanaan", SupervisorEmail: "budi.santoso@worklog.id"},
	{Name: "Siti Rahayu", Email: "siti.rahayu@worklog.id", Position: "Kepala Bidang Keuangan", SupervisorEmail: "budi.santoso@worklog.id"},
	{Name: "Dedi Kurniawan", Email: "dedi.kurniawan@worklog.id", Position: "Staf Perencanaan", SupervisorEmail: "ahmad.wijaya@worklog.id"},
	{Name: "Rina Permata", Email: "rina.permata@worklog.id", Position: "Staf Keuangan", SupervisorEmail: "siti.rahayu@worklog.id"},
}

var seedActivities = []string{
	"Menyusun laporan kegiatan harian",
	"Rapat koordinasi internal",
	"Menindaklanjuti disposisi pimpinan",
	"Verifikasi dokumen administrasi",
	"Penyusunan draft surat keluar",
	"Input data ke sistem informasi",
	"Monitoring pelaksanaan program",
}

const seedPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	idsByEmail := make(map[string]string, len(seedEmployees))
	for _, e := range seedEmployees {
		id, err := upsertEmployee(ctx, db, e, string(hash), idsByEmail)
		if err != nil {
			log.Fatalf("Error seeding employee %s: %v", e.Email, err)
		}
		idsByEmail[e.Email] = id
	}
	log.Printf("Seeded %d employees", len(seedEmployees))

	logs, err := seedDailyLogs(ctx, db, idsByEmail)
	if err != nil {
		log.Fatal("Error seeding daily logs: ", err)
	}
	log.Printf("Seeded %d daily logs", logs)
}

// upsertEmployee inserts the employee unless the email is already present,
// returning the row id either way. Supervisors appear earlier in the seed
// list, so the id lookup always succeeds.
func upsertEmployee(ctx context.Context, db *database.DB, e seedEmployee, passwordHash string, idsByEmail map[string]string) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `SELECT id FROM employees WHERE email = $1`, e.Email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != pgx.ErrNoRows {
		return "", err
	}

	newID, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	var supervisorID *string
	if e.SupervisorEmail != "" {
		supID := idsByEmail[e.SupervisorEmail]
		supervisorID = &supID
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO employees (id, name, email, password_hash, position, supervisor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`, newID.String(), e.Name, e.Email, passwordHash, e.Position, supervisorID)
	if err != nil {
		return "", err
	}

	return newID.String(), nil
}

// seedDailyLogs gives every non-root employee one pending log per activity
// over the last week. Runs are idempotent; employees that already have logs
// are skipped.
func seedDailyLogs(ctx context.Context, db *database.DB, idsByEmail map[string]string) (int, error) {
	inserted := 0
	for _, e := range seedEmployees {
		if e.SupervisorEmail == "" {
			continue
		}
		employeeID := idsByEmail[e.Email]

		var hasLogs bool
		err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM daily_logs WHERE employee_id = $1)`, employeeID).Scan(&hasLogs)
		if err != nil {
			return inserted, err
		}
		if hasLogs {
			continue
		}

		for i, activity := range seedActivities {
			id, err := uuid.NewV7()
			if err != nil {
				return inserted, err
			}

			logDate := time.Now().AddDate(0, 0, -i)
			_, err = db.Pool.Exec(ctx, `
				INSERT INTO daily_logs (id, employee_id, log_date, activity, description, status, created_at, updated_at)
				VALUES ($1, $2, $3, $4, NULL, 'pending', NOW(), NOW())
			`, id.String(), employeeID, logDate, activity)
			if err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}
