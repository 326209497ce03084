package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/laredo-ist/workorder-service/internal/auth"
	"github.com/laredo-ist/workorder-service/internal/config"
	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/observability"
	"github.com/laredo-ist/workorder-service/internal/persistence"
	"github.com/laredo-ist/workorder-service/internal/repository"
	"github.com/laredo-ist/workorder-service/internal/routing"
)

type seedEmployee struct {
	employeeID string
	firstName  string
	lastName   string
	email      string
	department string
	password   string
}

type seedTicket struct {
	employeeID  string
	category    string
	subType     string
	issueType   string
	title       string
	description string
	priority    int
	status      domain.TicketStatus
}

var seedEmployees = []seedEmployee{
	{"LRD-1001", "Maria", "Gonzalez", "m.gonzalez@laredotx.gov", "Finance", "Laredo2024!"},
	{"LRD-1002", "Carlos", "Ramirez", "c.ramirez@laredotx.gov", "Police Department", "Laredo2024!"},
	{"LRD-1003", "Sofia", "Herrera", "s.herrera@laredotx.gov", "City Clerk", "Laredo2024!"},
	{"LRD-1004", "James", "Williams", "j.williams@laredotx.gov", "Public Works", "Laredo2024!"},
	{"LRD-1005", "Ana", "Torres", "a.torres@laredotx.gov", "Health Department", "Laredo2024!"},
	{"LRD-1006", "Roberto", "Salinas", "r.salinas@laredotx.gov", "Fire Department", "Laredo2024!"},
	{"LRD-1007", "Linda", "Martinez", "l.martinez@laredotx.gov", "Parks & Recreation", "Laredo2024!"},
	{"LRD-1008", "David", "Nguyen", "d.nguyen@laredotx.gov", "Utilities", "Laredo2024!"},
	{"LRD-1009", "Patricia", "Lopez", "p.lopez@laredotx.gov", "Planning & Zoning", "Laredo2024!"},
	{"LRD-1010", "Miguel", "Castillo", "m.castillo@laredotx.gov", "City Manager's Office", "Laredo2024!"},
	{"LRD-1011", "Jessica", "Flores", "j.flores@laredotx.gov", "Finance", "Laredo2024!"},
	{"LRD-1012", "Fernando", "Reyes", "f.reyes@laredotx.gov", "Police Department", "Laredo2024!"},
	{"LRD-1013", "Melissa", "Garza", "m.garza@laredotx.gov", "Health Department", "Laredo2024!"},
	{"LRD-1014", "Steven", "Morales", "s.morales@laredotx.gov", "Public Works", "Laredo2024!"},
	{"LRD-1015", "Diana", "Vasquez", "d.vasquez@laredotx.gov", "City Clerk", "Laredo2024!"},
	{"LRD-1016", "Hector", "Jimenez", "h.jimenez@laredotx.gov", "Fire Department", "Laredo2024!"},
	{"LRD-1017", "Rachel", "Cruz", "r.cruz@laredotx.gov", "Parks & Recreation", "Laredo2024!"},
	{"LRD-1018", "Antonio", "Mendoza", "a.mendoza@laredotx.gov", "Utilities", "Laredo2024!"},
	{"LRD-1019", "Vanessa", "Perez", "v.perez@laredotx.gov", "Planning & Zoning", "Laredo2024!"},
	{"LRD-1020", "Eduardo", "Ramos", "e.ramos@laredotx.gov", "City Manager's Office", "Laredo2024!"},
	{"IST-ADMIN", "IST", "Admin", "ist.admin@laredotx.gov", "City Manager's Office", "ISTadmin2024!"},
}

var seedTickets = []seedTicket{
	{
		employeeID: "LRD-1001", category: "hardware", subType: "no_boot", issueType: "power_no_response",
		title:       "Desktop will not turn on after weekend",
		description: "Computer was working fine Friday. Came in Monday and it won't power on at all. Power button does nothing.",
		priority:    3, status: domain.TicketStatusInProgress,
	},
	{
		employeeID: "LRD-1002", category: "network", subType: "complete_outage", issueType: "dept_outage",
		title:       "Entire detective division has no network access",
		description: "All computers on the 3rd floor detective division lost internet and internal network access. Cannot access RMS or dispatch systems.",
		priority:    3, status: domain.TicketStatusOpen,
	},
	{
		employeeID: "LRD-1003", category: "email", subType: "no_login", issueType: "password_issue",
		title:       "Cannot log into Outlook — locked out",
		description: "Getting 'account locked' message when trying to open Outlook. Tried resetting password through portal but still locked.",
		priority:    3, status: domain.TicketStatusOpen,
	},
	{
		employeeID: "LRD-1007", category: "software", subType: "app_crash", issueType: "crash_on_launch",
		title:       "Parks scheduling software crashes on launch",
		description: "RecTrac crashes immediately after login screen every time since the update last Tuesday.",
		priority:    3, status: domain.TicketStatusOpen,
	},
	{
		employeeID: "LRD-1018", category: "security", subType: "data_loss", issueType: "unauthorized_access",
		title:       "SCADA system showing unauthorized access alert",
		description: "Water treatment SCADA console is showing an unauthorized access alert from an unknown IP. Need immediate investigation.",
		priority:    2, status: domain.TicketStatusOpen,
	},
	{
		employeeID: "LRD-1010", category: "hardware", subType: "display", issueType: "no_signal",
		title:       "Monitor not displaying anything after move",
		description: "Moved office over the weekend. Reconnected everything but monitor stays black. The PC appears to be on.",
		priority:    3, status: domain.TicketStatusOpen,
	},
	{
		employeeID: "LRD-1005", category: "software", subType: "no_login", issueType: "account_locked",
		title:       "EMR system account locked — patients waiting",
		description: "Cannot access the Electronic Medical Records system. Error says account is disabled. Have patients in waiting room.",
		priority:    2, status: domain.TicketStatusInProgress,
	},
	{
		employeeID: "LRD-1011", category: "data", subType: "data_loss", issueType: "report_wrong",
		title:       "Budget report showing wrong totals for Q3",
		description: "Q3 budget summary report is showing totals that don't match our spreadsheets. Possible data import issue after the server maintenance.",
		priority:    3, status: domain.TicketStatusOpen,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	engine := routing.NewEngine()

	employees := map[string]*domain.Employee{}
	createdEmployees := 0
	for _, seed := range seedEmployees {
		hash, err := auth.HashPassword(seed.password, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash password", zap.Error(err))
		}
		employee := &domain.Employee{
			EmployeeID:   seed.employeeID,
			FirstName:    seed.firstName,
			LastName:     seed.lastName,
			Email:        seed.email,
			Department:   seed.department,
			PasswordHash: hash,
			Active:       true,
		}
		if err := employeeRepo.Create(ctx, employee); err != nil {
			logger.Fatal("failed to seed employee", zap.String("employee_id", seed.employeeID), zap.Error(err))
		}
		employees[seed.employeeID] = employee
		createdEmployees++
	}
	logger.Info("employees seeded", zap.Int("count", createdEmployees))

	createdTickets := 0
	for _, seed := range seedTickets {
		employee, ok := employees[seed.employeeID]
		if !ok {
			continue
		}

		result := engine.Compute(routing.Input{
			Department:   employee.Department,
			Category:     seed.category,
			SubType:      seed.subType,
			UserPriority: seed.priority,
			Text:         seed.title + " " + seed.description,
		})

		requesterID := employee.ID
		ticket := &domain.Ticket{
			RequesterID:  &requesterID,
			Name:         employee.FullName(),
			EmployeeID:   employee.EmployeeID,
			Department:   employee.Department,
			Email:        employee.Email,
			Category:     seed.category,
			SubType:      seed.subType,
			IssueType:    seed.issueType,
			Title:        seed.title,
			Description:  seed.description,
			UserPriority: result.UserPriority,
			Routing:      domain.DecisionFromResult(result),
			Status:       seed.status,
		}
		if err := ticketRepo.Create(ctx, ticket); err != nil {
			logger.Fatal("failed to seed ticket", zap.String("title", seed.title), zap.Error(err))
		}
		createdTickets++
	}
	logger.Info("tickets seeded", zap.Int("count", createdTickets))
	logger.Info("seed complete",
		zap.String("staff_password", "Laredo2024!"),
		zap.String("admin_login", "IST-ADMIN / ISTadmin2024!"),
	)
}
