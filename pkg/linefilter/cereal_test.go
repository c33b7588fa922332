package linefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cppgen/pkg/catalog"
)

func TestCerealFilterExpandsSaveAndLoad(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Classes["Config"] = catalog.ClassData{
		Name:         "Config",
		Serializable: true,
		Members: []catalog.MemberData{
			{Type: "int", Name: "retries"},
			{Type: "std::string", Name: "label", Serializable: true},
		},
	}

	f := NewCerealFilter(cat)
	f.HandleClassPush("Config")

	var out []string
	f.OnLine(func(line string) { out = append(out, line) })
	f.HandleLine("[[genCerealLoadSave]]")

	want := []string{
		"template <typename Archive> void save(Archive& ar) const {",
		`    ar(cereal::make_nvp("retries", retries));`,
		`    ar(cereal::make_nvp("label", label));`,
		"}",
		"template <typename Archive> void load(Archive& ar) {",
		"    ar(retries);",
		"    ar(label);",
		"}",
	}
	assert.Equal(t, want, out)
}

func TestCerealFilterOnlyMemberSerializableWhenClassIsNot(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Classes["Mixed"] = catalog.ClassData{
		Name: "Mixed",
		Members: []catalog.MemberData{
			{Type: "int", Name: "kept", Serializable: true},
			{Type: "int", Name: "dropped"},
		},
	}

	f := NewCerealFilter(cat)
	f.HandleClassPush("Mixed")

	var out []string
	f.OnLine(func(line string) { out = append(out, line) })
	f.HandleLine("[[genCerealLoadSave]]")

	assert.Contains(t, out, `    ar(cereal::make_nvp("kept", kept));`)
	assert.NotContains(t, out, `    ar(cereal::make_nvp("dropped", dropped));`)
}
