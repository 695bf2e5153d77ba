// seed_demo genera un script SQL con una empresa de demostración, sus módulos
// activos, usuarios (contraseñas bcrypt) y documentos de perfil.
//
// Uso: go run ./cmd/seed_demo [ruta/seed.yaml]
// Sin argumento usa demo.yaml embebido.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
)

//go:embed demo.yaml
var demoSeed []byte

type seed struct {
	Company struct {
		ID      string   `yaml:"id"`
		Name    string   `yaml:"name"`
		NIT     string   `yaml:"nit"`
		Modules []string `yaml:"modules"`
	} `yaml:"company"`
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Profile  *struct {
		Nombre       string `yaml:"nombre"`
		NombreCajero string `yaml:"nombre_cajero"`
		Avatar       string `yaml:"avatar"`
	} `yaml:"profile"`
}

// hashFunc permite a los tests evitar el coste de bcrypt.
type hashFunc func(password string) (string, error)

func bcryptHash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

func main() {
	data := demoSeed
	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer seed: %v\n", err)
			os.Exit(1)
		}
		data = raw
	}

	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar YAML: %v\n", err)
		os.Exit(1)
	}
	if err := validateSeed(s); err != nil {
		fmt.Fprintf(os.Stderr, "Seed inválido: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := render(out, s, bcryptHash, uuid.NewString); err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: 1 empresa, %d módulos, %d usuarios\n", outPath, len(s.Company.Modules), len(s.Users))
}

func validateSeed(s seed) error {
	if _, err := uuid.Parse(s.Company.ID); err != nil {
		return fmt.Errorf("company.id debe ser UUID: %w", err)
	}
	if strings.TrimSpace(s.Company.Name) == "" {
		return fmt.Errorf("company.name requerido")
	}
	for _, m := range s.Company.Modules {
		if !slices.Contains(entity.AllModules, m) {
			return fmt.Errorf("módulo desconocido %q", m)
		}
	}
	for _, u := range s.Users {
		if u.Email == "" || len(u.Password) < 8 {
			return fmt.Errorf("usuario %q: email y password (8+) requeridos", u.Email)
		}
		if entity.RoleLabel(u.Role) == "" {
			return fmt.Errorf("usuario %q: rol %q inválido", u.Email, u.Role)
		}
	}
	return nil
}

// render escribe el script. Es idempotente frente a la base: ON CONFLICT en cada INSERT.
func render(w io.Writer, s seed, hash hashFunc, newID func() string) error {
	var b strings.Builder
	b.WriteString("-- Datos de demostración del panel TPV\n")
	b.WriteString("-- Generado por cmd/seed_demo\n\n")

	b.WriteString("-- 1. Empresa\n")
	fmt.Fprintf(&b, "INSERT INTO companies (id, name, nit) VALUES ('%s', '%s', '%s')\n",
		s.Company.ID, escapeSQL(s.Company.Name), escapeSQL(s.Company.NIT))
	b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, nit = EXCLUDED.nit;\n\n")

	if len(s.Company.Modules) > 0 {
		b.WriteString("-- 2. Módulos activos\n")
		b.WriteString("INSERT INTO company_modules (company_id, module_name) VALUES\n")
		for i, m := range s.Company.Modules {
			sep := ","
			if i == len(s.Company.Modules)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", s.Company.ID, m, sep)
		}
		b.WriteString("ON CONFLICT (company_id, module_name) DO UPDATE SET is_active = true;\n\n")
	}

	b.WriteString("-- 3. Usuarios y perfiles\n")
	for _, u := range s.Users {
		h, err := hash(u.Password)
		if err != nil {
			return fmt.Errorf("hash de %s: %w", u.Email, err)
		}
		id := newID()
		email := escapeSQL(strings.ToLower(strings.TrimSpace(u.Email)))
		fmt.Fprintf(&b, "INSERT INTO users (id, company_id, email, password_hash, name, role)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s, '%s')\n",
			id, s.Company.ID, email, escapeSQL(h), nullable(u.Name), u.Role)
		b.WriteString("ON CONFLICT (company_id, email) DO NOTHING;\n")

		if u.Profile != nil {
			b.WriteString("INSERT INTO user_profiles (user_id, nombre, nombre_cajero, avatar)\n")
			fmt.Fprintf(&b, "SELECT id, %s, %s, %s FROM users WHERE company_id = '%s' AND email = '%s'\n",
				nullable(u.Profile.Nombre), nullable(u.Profile.NombreCajero), nullable(u.Profile.Avatar),
				s.Company.ID, email)
			b.WriteString("ON CONFLICT (user_id) DO UPDATE SET nombre = EXCLUDED.nombre, nombre_cajero = EXCLUDED.nombre_cajero, avatar = EXCLUDED.avatar;\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// nullable devuelve NULL para cadenas vacías.
func nullable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
