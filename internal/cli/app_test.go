package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/preferences"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/roomsplit/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ objects map[string][]byte }

func (m *memStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.objects[key] = data
	return key, nil
}

func (m *memStore) Delete(ctx context.Context, ref string) error {
	delete(m.objects, ref)
	return nil
}

func (m *memStore) Resolve(ctx context.Context, ref string) (string, error) {
	return "http://blobs.test/" + ref, nil
}

type harness struct {
	app   *App
	out   *bytes.Buffer
	es    *services.ExpenseService
	store *memStore
}

// newHarness builds an App over an in-memory database; input is what the
// user will type in answer to prompts.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := func() time.Time { return time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC) }
	es := services.NewExpenseService(db, m, models.MustRoster("A", "B", "C"), services.WithClock(clock))
	store := &memStore{objects: map[string][]byte{}}
	rs := services.NewReceiptService(db, m, store, 0, nil, nil)
	prefs := preferences.NewManager(m.Metadata(db), i18n.English)

	out := &bytes.Buffer{}
	app := newApp(es, rs, prefs, nil, strings.NewReader(input), out)
	return &harness{app: app, out: out, es: es, store: store}
}

func (h *harness) add(t *testing.T, roommate, amount, desc, date string) models.Expense {
	t.Helper()
	e, err := h.es.Add(context.Background(), services.NewExpense{Roommate: roommate, Amount: amount, Description: desc, Date: date})
	require.NoError(t, err)
	return e
}

func TestAdd_Inline(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.app.Add(context.Background(), []string{"B", "12,5", "Milk", "and", "bread"}))
	assert.Contains(t, h.out.String(), "Expense added successfully")

	list, err := h.es.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Milk and bread", list[0].Description)
	assert.Equal(t, "2024-01-31", list[0].DateString())
}

func TestAdd_Prompted(t *testing.T) {
	h := newHarness(t, "2\n7.25\nBread\n2024-01-05\n")
	require.NoError(t, h.app.Add(context.Background(), nil))

	list, err := h.es.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Roommate)
	assert.Equal(t, "2024-01-05", list[0].DateString())
	assert.Contains(t, h.out.String(), "Select Roommate")
}

func TestAdd_Errors(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	assert.Error(t, h.app.Add(ctx, []string{"A", "1"}))
	assert.Error(t, h.app.Add(ctx, []string{"Z", "1", "x"}))
	assert.Error(t, h.app.Add(ctx, []string{"A", "-1", "x"}))
	assert.Contains(t, h.out.String(), "Error adding expense: Please check the entered values")

	// prompts hit EOF
	assert.Error(t, h.app.Add(ctx, nil))
}

func TestListShowSettle(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	require.NoError(t, h.app.List(ctx))
	assert.Contains(t, h.out.String(), "No expenses recorded for this month yet.")

	e := h.add(t, "A", "90", "Groceries", "2024-01-15")
	h.out.Reset()
	require.NoError(t, h.app.List(ctx))
	assert.Contains(t, h.out.String(), e.ID)
	assert.Contains(t, h.out.String(), "01/15/2024")
	assert.Contains(t, h.out.String(), "90.00")

	h.out.Reset()
	require.NoError(t, h.app.Show(ctx, e.ID))
	assert.Contains(t, h.out.String(), "Groceries")
	assert.Error(t, h.app.Show(ctx, "missing"))
	assert.Contains(t, h.out.String(), "Expense not found")

	h.out.Reset()
	require.NoError(t, h.app.Settle(ctx))
	assert.Contains(t, h.out.String(), "B owes A: 30.00")
	assert.Contains(t, h.out.String(), "C owes A: 30.00")
}

func TestDelete_AsksForConfirmation(t *testing.T) {
	h := newHarness(t, "n\ny\n")
	ctx := context.Background()
	e := h.add(t, "A", "10", "Soap", "2024-01-02")

	err := h.app.Delete(ctx, e.ID)
	assert.Error(t, err)
	assert.Contains(t, h.out.String(), "Are you sure you want to delete this expense? This action cannot be undone. [y/N]")
	assert.Contains(t, h.out.String(), "Cancelled")

	require.NoError(t, h.app.Delete(ctx, e.ID))
	assert.Contains(t, h.out.String(), "Expense deleted successfully")

	list, err := h.es.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEndMonthMonthsAndExports(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()
	dir := t.TempDir()

	assert.Error(t, h.app.EndMonth(ctx))
	assert.Contains(t, h.out.String(), "Nothing to archive")

	h.add(t, "A", "30", "Rent, January", "2024-01-10")

	current := filepath.Join(dir, "current.csv")
	require.NoError(t, h.app.Export(ctx, current))
	b, err := os.ReadFile(current)
	require.NoError(t, err)
	assert.Contains(t, string(b), `01/10/2024,A,"Rent, January",30.00`)

	require.NoError(t, h.app.EndMonth(ctx))
	assert.Contains(t, h.out.String(), "Month archived successfully")

	months, err := h.es.Archives(ctx)
	require.NoError(t, err)
	require.Len(t, months, 1)
	id := months[0].ID

	h.out.Reset()
	require.NoError(t, h.app.Months(ctx))
	assert.Contains(t, h.out.String(), id)

	h.out.Reset()
	require.NoError(t, h.app.Month(ctx, id))
	assert.Contains(t, h.out.String(), "Rent, January")

	archived := filepath.Join(dir, "jan.csv")
	require.NoError(t, h.app.ExportMonth(ctx, id, archived))
	_, err = os.Stat(archived)
	assert.NoError(t, err)

	assert.Error(t, h.app.ExportMonth(ctx, "", ""))
	assert.Error(t, h.app.Month(ctx, "nope"))

	h.out.Reset()
	require.NoError(t, h.app.Analytics(ctx))
	assert.Contains(t, h.out.String(), "January 2024: 30.00")
}

func TestReceiptCommands(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()
	e := h.add(t, "A", "10", "Soap", "2024-01-02")

	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) {
		// minimal GIF header is enough for content sniffing
		return []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"), nil
	}

	require.NoError(t, h.app.Receipt(ctx, e.ID, "/tmp/scan.gif"))
	assert.Contains(t, h.store.objects, "receipts/"+e.ID+"/scan.gif")

	h.out.Reset()
	require.NoError(t, h.app.Show(ctx, e.ID))
	assert.Contains(t, h.out.String(), "http://blobs.test/receipts/"+e.ID+"/scan.gif")

	require.NoError(t, h.app.Unreceipt(ctx, e.ID))
	assert.Empty(t, h.store.objects)
	assert.Error(t, h.app.Unreceipt(ctx, e.ID))

	readFile = func(string) ([]byte, error) { return []byte("hello"), nil }
	assert.Error(t, h.app.Receipt(ctx, e.ID, "notes.txt"))
	assert.Contains(t, h.out.String(), "Please upload an image file")

	readFile = func(string) ([]byte, error) { return nil, errors.New("no such file") }
	assert.Error(t, h.app.Receipt(ctx, e.ID, "x.png"))
	assert.Error(t, h.app.Receipt(ctx, "", ""))
}

func TestLangAndTheme(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	require.NoError(t, h.app.Lang(ctx, "tr"))
	assert.Equal(t, "tr|light", h.app.status())

	h.out.Reset()
	require.NoError(t, h.app.List(ctx))
	assert.Contains(t, h.out.String(), "Bu ay")

	require.NoError(t, h.app.Theme(ctx, "dark"))
	assert.Equal(t, "tr|dark", h.app.status())

	assert.Error(t, h.app.Lang(ctx, "xx"))
	assert.Error(t, h.app.Theme(ctx, "neon"))
}
