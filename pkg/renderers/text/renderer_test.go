package text_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/text"
	"github.com/goliatone/go-formwizard/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...text.Option) *text.Renderer {
	t.Helper()
	renderer, err := text.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != "text" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_Summary(t *testing.T) {
	renderer := newRenderer(t)

	out, err := renderer.Render(context.Background(), render.View{
		Name:   render.ViewSummary,
		Record: testsupport.SampleRecord(),
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Check your data\n" +
		"Name: John Doe\n" +
		"Login: jdoe\n" +
		"E-mail: jdoe@example.com\n" +
		"Company: Acme\n" +
		"Department: Technology\n" +
		"Vacancy: Front End\n"
	if string(out) != want {
		t.Fatalf("summary mismatch\nwant: %q\n got: %q", want, string(out))
	}
	if strings.Contains(string(out), "Abc123!x") {
		t.Fatalf("password leaked into summary")
	}
}

func TestRenderer_SummaryBlankCompanyAndLocale(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleRecord()
	record.Company = ""

	out, err := renderer.Render(context.Background(), render.View{Name: render.ViewSummary, Record: record}, render.RenderOptions{Locale: "ru-RU"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)
	if !strings.HasPrefix(got, "Проверьте данные\n") {
		t.Fatalf("expected localized title, got %q", got)
	}
	if !strings.Contains(got, "Логин: jdoe\n") {
		t.Fatalf("expected localized label, got %q", got)
	}
	if !strings.Contains(got, ": -\n") {
		t.Fatalf("expected placeholder for blank company, got %q", got)
	}
}

func TestRenderer_SummaryKeepsMarkupOut(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleRecord()
	record.Company = "<b>O'Neil & Co</b>"

	out, err := renderer.Render(context.Background(), render.View{Name: render.ViewSummary, Record: record}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Company: O'Neil & Co\n") {
		t.Fatalf("expected sanitised company, got %q", string(out))
	}
}

func TestRenderer_Regards(t *testing.T) {
	renderer := newRenderer(t)

	out, err := renderer.Render(context.Background(), render.View{Name: render.ViewRegards}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Thank you!\nYour application has been sent.\n"
	if string(out) != want {
		t.Fatalf("regards mismatch\nwant: %q\n got: %q", want, string(out))
	}
}

func TestRenderer_TemplatesDirOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "regards.tpl"), []byte("{{ title }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	renderer := newRenderer(t, text.WithTemplatesDir(dir))

	out, err := renderer.Render(context.Background(), render.View{Name: render.ViewRegards}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Thank you!" {
		t.Fatalf("expected override output, got %q", string(out))
	}

	if _, err := renderer.Render(context.Background(), render.View{Name: render.ViewSummary, Record: testsupport.SampleRecord()}, render.RenderOptions{}); err != nil {
		t.Fatalf("embedded summary should remain available: %v", err)
	}
}

func TestRenderer_Errors(t *testing.T) {
	renderer := newRenderer(t)

	_, err := renderer.Render(context.Background(), render.View{Name: "nope"}, render.RenderOptions{})
	if !errors.Is(err, text.ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, render.View{Name: render.ViewRegards}, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
