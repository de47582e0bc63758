package application

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/radar-admin/pkg/composables"
)

// LocaleFS is an embedded filesystem of locale JSON/TOML files.
type LocaleFS = *embed.FS

// MigrationManager applies module-embedded schema files in path order.
// Schema files are written to be idempotent (CREATE ... IF NOT EXISTS).
type MigrationManager interface {
	RegisterSchema(fsys *embed.FS)
	Run(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []*embed.FS
}

func (m *migrationManager) RegisterSchema(fsys *embed.FS) {
	m.schemas = append(m.schemas, fsys)
}

// Run applies each registered schema inside its own transaction, so a
// failing file rolls back the whole module's schema.
func (m *migrationManager) Run(ctx context.Context) error {
	if m.pool == nil {
		return gerrors.New("migrations: no database pool")
	}
	ctx = composables.WithPool(ctx, m.pool)
	for _, fsys := range m.schemas {
		files, err := schemaFiles(fsys)
		if err != nil {
			return err
		}
		err = composables.InTx(ctx, func(txCtx context.Context) error {
			tx, err := composables.UseTx(txCtx)
			if err != nil {
				return err
			}
			for _, file := range files {
				contents, err := fsys.ReadFile(file)
				if err != nil {
					return gerrors.Wrapf(err, "migrations: read %s", file)
				}
				if _, err := tx.Exec(txCtx, string(contents)); err != nil {
					return gerrors.Wrapf(err, "migrations: apply %s", file)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func schemaFiles(fsys *embed.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, gerrors.Wrap(err, "migrations: walk schema fs")
	}
	sort.Strings(files)
	return files, nil
}

// RegisterLocaleFiles loads every file in the embedded filesystem into
// the application's i18n bundle.
func (app *application) RegisterLocaleFiles(fsys LocaleFS) {
	if app.bundle == nil {
		return
	}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		_, err = app.bundle.LoadMessageFileFS(fsys, path)
		return err
	})
	if err != nil {
		panic(gerrors.Wrap(err, "failed to load locale files"))
	}
}
