// seed prepara una base vacía: crea índices y registra el primer empleado para
// poder iniciar sesión.
//
// Uso:
//
//	go run ./cmd/seed indexes
//	go run ./cmd/seed employee --email admin@empresa.mx --password 'secreto12' \
//	    --first-name Admin --last-name Sistema --role Administrador --department Sistemas --salary 1
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/destinity-erp/internal/application/usecase"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/infrastructure/mongodb"
	"github.com/jhoicas/destinity-erp/pkg/config"
	"github.com/jhoicas/destinity-erp/pkg/logger"
	"github.com/jhoicas/destinity-erp/pkg/password"
)

type env struct {
	cfg *config.Config
	log *logger.Logger
}

// connect abre MongoDB y devuelve la función de cierre.
func (e *env) connect(ctx context.Context) (*mongodb.UserRepo, func(), error) {
	client, db, err := mongodb.Connect(ctx, e.cfg.Mongo)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Disconnect(context.Background()) }
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		closeFn()
		return nil, nil, err
	}
	return mongodb.NewUserRepository(db, e.log.Named("mongodb")), closeFn, nil
}

func main() {
	e := &env{}
	timeout := 30 * time.Second

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Inicializa la base de datos del ERP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})
			return nil
		},
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Tiempo máximo de la operación")

	indexesCmd := &cobra.Command{
		Use:   "indexes",
		Short: "Crea los índices de las colecciones hr, inventory y sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			_, closeFn, err := e.connect(ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			fmt.Println("índices creados")
			return nil
		},
	}

	var in entity.UserInput
	emp := entity.EmployeeInput{}
	var salary float64
	employeeCmd := &cobra.Command{
		Use:   "employee",
		Short: "Registra un empleado (mismas reglas que POST /api/users/employees)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			repo, closeFn, err := e.connect(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if cmd.Flags().Changed("salary") {
				emp.Salary = &salary
			}
			in.Employee = &emp
			uc := usecase.NewUserUseCase(repo, password.NewHasher(e.cfg.Bcrypt.Cost), usecase.WithLogger(e.log))
			out, err := uc.CreateEmployee(ctx, &in)
			if err != nil {
				return err
			}
			if out == nil {
				return fmt.Errorf("el empleado no fue registrado")
			}
			fmt.Printf("empleado creado: id=%s email=%s\n", out.ID, out.Email)
			return nil
		},
	}
	f := employeeCmd.Flags()
	f.StringVar(&in.FirstName, "first-name", "", "Nombre")
	f.StringVar(&in.LastName, "last-name", "", "Apellido paterno")
	f.StringVar(&in.MiddleName, "middle-name", "", "Apellido materno")
	f.StringVar(&in.Email, "email", "", "Correo (login)")
	f.StringVar(&in.Password, "password", "", "Contraseña (mínimo 8 caracteres)")
	f.StringVar(&in.Status, "status", entity.DefaultUserStatus, "Estatus")
	f.StringVar(&emp.Role, "role", "", "Rol (queda en el claim role del token)")
	f.StringVar(&emp.Department, "department", "", "Departamento")
	f.Float64Var(&salary, "salary", 0, "Salario")
	_ = employeeCmd.MarkFlagRequired("email")
	_ = employeeCmd.MarkFlagRequired("password")

	root.AddCommand(indexesCmd, employeeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
