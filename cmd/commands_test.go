package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sef-community/sefctl/internal/contacts"
	"github.com/sef-community/sefctl/internal/notify"
	"github.com/sef-community/sefctl/internal/ui"
)

type stubRequester struct {
	text string
	err  error
}

func (s stubRequester) Request(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

type stubSender struct {
	fail map[string]bool
	sent []string
}

func (s *stubSender) Send(ctx context.Context, to, body string) error {
	if s.fail[to] {
		return errors.New("undeliverable")
	}
	s.sent = append(s.sent, to)
	return nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeRun(t *testing.T) {
	setupTestEnv(t)
	img := writeFile(t, "face.jpg", "\xff\xd8")

	var buf bytes.Buffer
	if err := analyzeRun(context.Background(), &buf, stubRequester{text: "No distress detected."}, img, true); err != nil {
		t.Fatalf("analyzeRun: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No distress detected.") {
		t.Errorf("expected analysis text, got %q", out)
	}
	if !strings.Contains(out, shareNotice) {
		t.Errorf("expected share notice, got %q", out)
	}
}

func TestAnalyzeRunJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	img := writeFile(t, "face.jpg", "\xff\xd8")

	var buf bytes.Buffer
	if err := analyzeRun(context.Background(), &buf, stubRequester{text: "ok"}, img, false); err != nil {
		t.Fatalf("analyzeRun: %v", err)
	}
	var got AnalysisResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Analysis != "ok" || got.Image != img || got.Shared {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestAnalyzeRunErrors(t *testing.T) {
	setupTestEnv(t)
	var buf bytes.Buffer

	if err := analyzeRun(context.Background(), &buf, stubRequester{}, filepath.Join(t.TempDir(), "missing.jpg"), false); err == nil {
		t.Error("expected error for missing image")
	}

	img := writeFile(t, "face.jpg", "\xff\xd8")
	boom := errors.New("status 500")
	if err := analyzeRun(context.Background(), &buf, stubRequester{err: boom}, img, false); !errors.Is(err, boom) {
		t.Errorf("expected request error, got %v", err)
	}
}

func TestNotifyRunContinuesPastFailure(t *testing.T) {
	setupTestEnv(t)
	sender := &stubSender{fail: map[string]bool{"A": true}}
	n, err := notify.New(sender, appConfig.Emergency.Message, nil)
	if err != nil {
		t.Fatalf("notify.New: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := notifyRun(context.Background(), &out, &errOut, n, contacts.NewBook("A", "B")); err != nil {
		t.Fatalf("notifyRun: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "B" {
		t.Errorf("expected B to be sent, got %v", sender.sent)
	}
	if !strings.Contains(out.String(), "1 of 2 messages sent.") {
		t.Errorf("unexpected report: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "1 message(s) could not be sent.") {
		t.Errorf("expected warning, got %q", errOut.String())
	}
}

func TestNotifyRunJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	n, err := notify.New(&stubSender{}, appConfig.Emergency.Message, nil)
	if err != nil {
		t.Fatalf("notify.New: %v", err)
	}

	var out bytes.Buffer
	if err := notifyRun(context.Background(), &out, &bytes.Buffer{}, n, contacts.NewBook("+1555")); err != nil {
		t.Fatalf("notifyRun: %v", err)
	}
	var got ui.ReportJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Sent != 1 || got.Message != appConfig.Emergency.Message {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestContactsRun(t *testing.T) {
	setupTestEnv(t)
	appConfig.Emergency.Contacts = []string{"+15550001", " ", "+15550002"}
	jsonOutput = true

	var buf bytes.Buffer
	if err := contactsRun(&buf); err != nil {
		t.Fatalf("contactsRun: %v", err)
	}
	var got []string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[1] != "+15550002" {
		t.Errorf("expected blank contact skipped, got %v", got)
	}
}

func TestMoodChartRun(t *testing.T) {
	setupTestEnv(t)
	csv := writeFile(t, "mood.csv", "Date,Mood,Notes\n2024-03-01,Sad,rain\n2024-03-02,Very Happy,sun\n")

	var buf bytes.Buffer
	if err := moodChartRun(&buf, csv, 80); err != nil {
		t.Fatalf("moodChartRun: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Very Happy", "Very Sad", "2024-03-01", "2024-03-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in chart, got:\n%s", want, out)
		}
	}
}

func TestMoodChartRunBadFile(t *testing.T) {
	setupTestEnv(t)
	csv := writeFile(t, "notes.csv", "Name,Value\n")
	if err := moodChartRun(&bytes.Buffer{}, csv, 80); err == nil {
		t.Error("expected error for wrong header")
	}
}

func TestConfirmNotify(t *testing.T) {
	refuse := func([]string) (bool, error) { return false, nil }
	accept := func([]string) (bool, error) { return true, nil }

	tests := []struct {
		name        string
		book        *contacts.Book
		yes         bool
		interactive bool
		confirm     func([]string) (bool, error)
		wantProceed bool
		wantErr     error
		wantOut     string
		wantErrOut  string
		wantAsked   bool
	}{
		{name: "no contacts warns", book: contacts.NewBook(), yes: true, interactive: true, confirm: accept,
			wantErrOut: "no emergency contacts"},
		{name: "yes skips prompt", book: contacts.NewBook("+1555"), yes: true, confirm: accept,
			wantProceed: true},
		{name: "no terminal without yes", book: contacts.NewBook("+1555"), confirm: accept,
			wantErr: errNeedsConfirmation},
		{name: "user accepts", book: contacts.NewBook("+1555"), interactive: true, confirm: accept,
			wantProceed: true, wantAsked: true},
		{name: "user declines", book: contacts.NewBook("+1555"), interactive: true, confirm: refuse,
			wantOut: "Cancelled.", wantAsked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			var asked []string
			confirm := func(r []string) (bool, error) {
				asked = r
				return tt.confirm(r)
			}

			proceed, err := confirmNotify(&out, &errOut, tt.book, tt.yes, tt.interactive, confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if proceed != tt.wantProceed {
				t.Errorf("proceed = %v, want %v", proceed, tt.wantProceed)
			}
			if (asked != nil) != tt.wantAsked {
				t.Errorf("asked = %v, want asked %v", asked, tt.wantAsked)
			}
			if tt.wantAsked && (len(asked) != 1 || asked[0] != "+1555") {
				t.Errorf("expected the recipients in the prompt, got %v", asked)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if !strings.Contains(errOut.String(), tt.wantErrOut) {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantErrOut)
			}
		})
	}
}

func TestConfirmNotifyPromptError(t *testing.T) {
	boom := errors.New("no tty")
	proceed, err := confirmNotify(&bytes.Buffer{}, &bytes.Buffer{}, contacts.NewBook("+1555"), false, true,
		func([]string) (bool, error) { return false, boom })
	if proceed || !errors.Is(err, boom) {
		t.Errorf("expected prompt error, got proceed=%v err=%v", proceed, err)
	}
}

func TestMoodListRun(t *testing.T) {
	setupTestEnv(t)
	csv := writeFile(t, "mood.csv", "Date,Mood,Notes\n2024-03-01,Sad,rain\n2024-03-02,Very Happy,sun\n")

	var buf bytes.Buffer
	if err := moodListRun(&buf, csv); err != nil {
		t.Fatalf("moodListRun: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"DATE", "2024-03-01", "Sad", "rain", "Very Happy", "sun"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in listing, got:\n%s", want, out)
		}
	}
}

func TestMoodListRunJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	csv := writeFile(t, "mood.csv", "Date,Mood,Notes\n2024-03-01,Sad,rain\n")

	var buf bytes.Buffer
	if err := moodListRun(&buf, csv); err != nil {
		t.Fatalf("moodListRun: %v", err)
	}
	if !strings.Contains(buf.String(), `"Sad"`) {
		t.Errorf("expected mood label in JSON, got %s", buf.String())
	}
}
