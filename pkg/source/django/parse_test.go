package django

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/migration"
)

const regularMigration = `from django.conf import settings
from django.db import migrations, models


class Migration(migrations.Migration):

    dependencies = [
        migrations.swappable_dependency(settings.AUTH_USER_MODEL),
        ("blog", "0001_initial"),
        # comment between entries
        ('auth', '0012_alter_user_first_name_max_length'),
    ]

    operations = [
        migrations.AddField(
            model_name="post",
            name="slug",
            field=models.SlugField(default=""),
        ),
    ]
`

const squashMigration = `from django.db import migrations


class Migration(migrations.Migration):

    replaces = (('blog', '0001_initial'), ('blog', '0002_post_slug'))

    initial = True

    dependencies = []

    operations = []
`

func TestParse_Dependencies(t *testing.T) {
	decl, err := NewParser().Parse(context.Background(), []byte(regularMigration))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []migration.RecordID{
		migration.ID("blog", "0001_initial"),
		migration.ID("auth", "0012_alter_user_first_name_max_length"),
	}
	if !slices.Equal(decl.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", decl.Dependencies, want)
	}
	if len(decl.Replaces) != 0 {
		t.Errorf("Replaces = %v, want none", decl.Replaces)
	}
}

func TestParse_Replaces(t *testing.T) {
	decl, err := NewParser().Parse(context.Background(), []byte(squashMigration))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []migration.RecordID{
		migration.ID("blog", "0001_initial"),
		migration.ID("blog", "0002_post_slug"),
	}
	if !slices.Equal(decl.Replaces, want) {
		t.Errorf("Replaces = %v, want %v", decl.Replaces, want)
	}
	if len(decl.Dependencies) != 0 {
		t.Errorf("Dependencies = %v, want none", decl.Dependencies)
	}
}

func TestParse_SkipsNonLiteralEntries(t *testing.T) {
	src := `from django.db import migrations

APP = "blog"


class Migration(migrations.Migration):
    dependencies = [
        (APP, "0001_initial"),
        (f"{APP}", "0002"),
        ("blog", "0003", "extra"),
        ("blog", "0004_ok"),
    ]
`
	decl, err := NewParser().Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []migration.RecordID{migration.ID("blog", "0004_ok")}
	if !slices.Equal(decl.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", decl.Dependencies, want)
	}
}

func TestParse_IgnoresOtherClasses(t *testing.T) {
	src := `class Helper:
    dependencies = [("blog", "0001")]


class Migration:
    dependencies = [("blog", "0002")]
`
	decl, err := NewParser().Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if want := []migration.RecordID{migration.ID("blog", "0002")}; !slices.Equal(decl.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", decl.Dependencies, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no migration class", "x = 1\n"},
		{"syntax error", "class Migration(:\n    pass\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(context.Background(), []byte(tt.src))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse() code = %v, want %v", errors.GetCode(err), errors.ErrCodeParse)
			}
		})
	}
}

func TestDependencyRegion(t *testing.T) {
	src := []byte(regularMigration)
	start, end, ok := DependencyRegion(src)
	if !ok {
		t.Fatal("DependencyRegion() not found")
	}
	region := string(src[start:end])
	if !strings.HasPrefix(region, "[") || !strings.HasSuffix(region, "]") {
		t.Errorf("region = %q, want list literal", region)
	}
	if !strings.Contains(region, `("blog", "0001_initial")`) {
		t.Errorf("region %q misses dependency", region)
	}
	if strings.Contains(region, "AddField") {
		t.Errorf("region %q leaks into operations", region)
	}
}

func TestDependencyRegion_NotFound(t *testing.T) {
	if _, _, ok := DependencyRegion([]byte("class Migration:\n    operations = []\n")); ok {
		t.Error("DependencyRegion() should report missing dependencies")
	}
	if _, _, ok := DependencyRegion([]byte("not python (")); ok {
		t.Error("DependencyRegion() should fail on invalid source")
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		src    string
		want   string
		wantOK bool
	}{
		{`"blog"`, "blog", true},
		{`'blog'`, "blog", true},
		{`u"blog"`, "blog", true},
		{`"""blog"""`, "blog", true},
		{`f"blog"`, "", false},
		{`"bl\og"`, "", false},
	}
	p := NewParser()
	for _, tt := range tests {
		src := []byte("class Migration:\n    dependencies = [(" + tt.src + ", " + tt.src + ")]\n")
		decl, err := p.Parse(context.Background(), src)
		if err != nil {
			t.Fatalf("Parse(%s) error: %v", tt.src, err)
		}
		gotOK := len(decl.Dependencies) == 1
		if gotOK != tt.wantOK {
			t.Errorf("%s: parsed = %v, want %v", tt.src, gotOK, tt.wantOK)
			continue
		}
		if gotOK && decl.Dependencies[0].App != tt.want {
			t.Errorf("%s: value = %q, want %q", tt.src, decl.Dependencies[0].App, tt.want)
		}
	}
}
