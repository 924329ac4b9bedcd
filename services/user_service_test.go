package services

import (
	"context"
	"testing"

	"quizmaster/models"
)

func TestLoginCreatesFreshProfile(t *testing.T) {
	store := NewMemoryStore()
	service := NewUserService(store)

	user, err := service.Login(context.Background(), models.User{
		Name:  "Alex",
		Email: "alex@example.com",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.UnlockedAchievements == nil || len(user.UnlockedAchievements) != 0 {
		t.Errorf("expected an empty unlocked set, got %v", user.UnlockedAchievements)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	persisted, err := store.GetProfile(context.Background(), "alex@example.com")
	if err != nil {
		t.Fatalf("new profile was not persisted: %v", err)
	}
	if persisted.Name != "Alex" {
		t.Errorf("persisted name %q", persisted.Name)
	}
}

func TestLoginKeepsExistingProgress(t *testing.T) {
	store := NewMemoryStore()
	service := NewUserService(store)

	existing := &models.User{
		Name:                 "Old Name",
		Email:                "alex@example.com",
		UnlockedAchievements: []string{"FIRST_QUIZ", "STREAK_5"},
		LongestStreakEver:    8,
	}
	if err := store.SaveProfile(context.Background(), existing); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	user, err := service.Login(context.Background(), models.User{
		Name:  "New Display Name",
		Email: "alex@example.com",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(user.UnlockedAchievements) != 2 {
		t.Errorf("achievements lost on login: %v", user.UnlockedAchievements)
	}
	if user.LongestStreakEver != 8 {
		t.Errorf("streak record lost on login: %d", user.LongestStreakEver)
	}
	if user.Name != "Old Name" {
		t.Errorf("expected the persisted profile to win, got name %q", user.Name)
	}
}

func TestUpdateProfile(t *testing.T) {
	store := NewMemoryStore()
	service := NewUserService(store)

	if _, err := service.Login(context.Background(), models.User{Name: "Alex", Email: "alex@example.com"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	selected := true
	user, err := service.UpdateProfile(context.Background(), "alex@example.com", "Alexandra", "avatar3.png", &selected)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != "Alexandra" || user.Picture != "avatar3.png" || !user.HasSelectedAvatar {
		t.Errorf("update not applied: %+v", user)
	}

	// Empty fields leave the current values alone.
	user, err = service.UpdateProfile(context.Background(), "alex@example.com", "", "", nil)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != "Alexandra" || user.Picture != "avatar3.png" || !user.HasSelectedAvatar {
		t.Errorf("empty update overwrote fields: %+v", user)
	}
}

func TestUpdateProfileUnknownEmail(t *testing.T) {
	service := NewUserService(NewMemoryStore())
	if _, err := service.UpdateProfile(context.Background(), "nobody@example.com", "X", "", nil); err == nil {
		t.Error("expected an error for an unknown profile")
	}
}
