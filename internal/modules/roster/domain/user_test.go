package domain_test

import (
	"testing"

	"courtside/internal/modules/roster/domain"
)

func TestParseRole(t *testing.T) {
	t.Parallel()
	if role, err := domain.ParseRole("Coach"); err != nil || role != domain.RoleCoach {
		t.Fatalf("ParseRole(Coach) = %v, %v", role, err)
	}
	if _, err := domain.ParseRole("admin"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestParseSkillLevelAllowsEmpty(t *testing.T) {
	t.Parallel()
	level, err := domain.ParseSkillLevel("")
	if err != nil || level != "" {
		t.Fatalf("empty skill level = %v, %v", level, err)
	}
	if _, err := domain.ParseSkillLevel("expert"); err == nil {
		t.Fatal("expected error for unknown skill level")
	}
}

func TestSkillLevelsCycleOrder(t *testing.T) {
	t.Parallel()
	levels := domain.SkillLevels()
	want := []domain.SkillLevel{domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v", levels)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("levels[%d] = %q, want %q", i, levels[i], want[i])
		}
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()
	user := domain.User{Username: "alice", DisplayName: "Alice", Role: domain.RolePlayer, SkillLevel: domain.SkillBeginner}
	if err := user.Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	user.Role = "referee"
	if err := user.Validate(); err == nil {
		t.Fatal("invalid role accepted")
	}
}
