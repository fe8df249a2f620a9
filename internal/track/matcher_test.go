package track

import (
	"testing"

	"sitrep/internal/model"
)

func TestSubstringMatcher_FirstAliasWins(t *testing.T) {
	m := NewSubstringMatcher([]model.SourceSpec{
		{Name: "ISW", Aliases: []string{"ISW", "Institute for the Study of War"}},
	})

	// Both aliases present; the detection must anchor on the first alias
	content := "The Institute for the Study of War, known as ISW, assesses..."
	found := m.Detect(content)

	if len(found) != 1 {
		t.Fatalf("Expected 1 detection, got %d", len(found))
	}
	if found[0].Alias != "ISW" {
		t.Errorf("Expected first-priority alias ISW, got %s", found[0].Alias)
	}
	// "ISW" first occurs inside "known as ISW"
	if found[0].Index != 45 {
		t.Errorf("Expected index 45, got %d", found[0].Index)
	}
}

func TestSubstringMatcher_RegistryOrderIsDeterministic(t *testing.T) {
	registry := []model.SourceSpec{
		{Name: "Al Arabiya", Aliases: []string{"Al Arabiya"}},
		{Name: "Al Jazeera", Aliases: []string{"Al Jazeera"}},
	}
	m := NewSubstringMatcher(registry)

	content := "Al Jazeera and Al Arabiya both carried it"
	for i := 0; i < 10; i++ {
		found := m.Detect(content)
		if len(found) != 2 {
			t.Fatalf("Expected 2 detections, got %d", len(found))
		}
		if found[0].Source != "Al Arabiya" || found[1].Source != "Al Jazeera" {
			t.Fatalf("Expected registry order, got %s then %s", found[0].Source, found[1].Source)
		}
	}
}

func TestSubstringMatcher_HebrewAlias(t *testing.T) {
	m := NewSubstringMatcher([]model.SourceSpec{
		{Name: "Walla", Aliases: []string{"Walla", "וואלה"}},
	})

	found := m.Detect("על פי דיווח בוואלה הבוקר")
	if len(found) != 1 || found[0].Source != "Walla" {
		t.Fatalf("Expected Walla via Hebrew alias, got %v", found)
	}
	if found[0].Alias != "וואלה" {
		t.Errorf("Expected Hebrew alias to match, got %s", found[0].Alias)
	}
}

func TestSubstringMatcher_NoMatches(t *testing.T) {
	m := NewSubstringMatcher(model.DefaultTrackerConfig().Sources)

	if found := m.Detect("a quiet unsourced paragraph"); len(found) != 0 {
		t.Errorf("Expected no detections, got %v", found)
	}
}
