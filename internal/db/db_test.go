package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	for _, driver := range []string{DriverCGO, DriverPure} {
		t.Run(driver, func(t *testing.T) {
			d, err := Open(driver, "file:schema_"+driver+"?mode=memory&cache=shared")
			require.NoError(t, err)
			t.Cleanup(func() { _ = d.Close() })

			ctx := context.Background()
			for i := 0; i < 3; i++ {
				require.NoError(t, EnsureSchema(ctx, d))
			}

			var tables int
			require.NoError(t, d.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'usuarios'`).Scan(&tables))
			require.Equal(t, 1, tables)

			rows, err := d.QueryContext(ctx, `PRAGMA table_info(usuarios)`)
			require.NoError(t, err)
			defer rows.Close()
			var cols []string
			for rows.Next() {
				var (
					cid     int
					name    string
					typ     string
					notNull int
					dflt    any
					pk      int
				)
				require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
				cols = append(cols, name)
				if name != "id" {
					require.Equal(t, 1, notNull, "column %s must be NOT NULL", name)
				}
			}
			require.NoError(t, rows.Err())
			require.Equal(t, []string{"id", "nome", "email"}, cols)
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("postgres", "whatever")
	require.Error(t, err)
}

func TestEnsureSchema_NilDB(t *testing.T) {
	require.Error(t, EnsureSchema(context.Background(), nil))
}
