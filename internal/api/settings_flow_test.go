package api

import (
	"net/http"
	"testing"
)

func TestSaveUserSettings_SwitchesRequestLanguage(t *testing.T) {
	app, _, database := newTestApp(t)
	createTestUser(t, database, "j.doe@example.com", "StrongPass1")
	cookie := loginTestUser(t, app, "j.doe@example.com", "StrongPass1")

	response := putJSON(t, app, cookie, "/api/settings", map[string]any{
		"language": "id",
		"timezone": "Asia/Jakarta",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := decodeJSONBody(t, response.Body)
	if payload["message"] != "Pengaturan berhasil disimpan." {
		t.Fatalf("expected the Indonesian confirmation, got %v", payload["message"])
	}
	if responseCookieValue(response.Cookies(), languageCookieName) != "id" {
		t.Fatal("expected language cookie switch to id")
	}

	// The stored preference now wins on later requests too.
	after := getJSON(t, app, cookie, "/api/leave/options")
	defer after.Body.Close()
	options := decodeJSONBody(t, after.Body)
	if warning, ok := options["warning"].(string); !ok || warning != "Departemen Anda belum diatur. Perbarui profil Anda terlebih dahulu." {
		t.Fatalf("expected Indonesian warning, got %v", options["warning"])
	}
}

func TestSaveUserSettings_RejectsUnsupportedLanguage(t *testing.T) {
	app, _, database := newTestApp(t)
	createTestUser(t, database, "j.doe@example.com", "StrongPass1")
	cookie := loginTestUser(t, app, "j.doe@example.com", "StrongPass1")

	response := putJSON(t, app, cookie, "/api/settings", map[string]any{
		"language": "fr",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestSaveAppSettings_SectionsSaveIndependently(t *testing.T) {
	app, _, database := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "StrongPass1")
	cookie := loginTestUser(t, app, "admin@example.com", "StrongPass1")

	departments := putJSON(t, app, cookie, "/api/settings/app", map[string]any{
		"departments": []string{"Engineering", "Finance"},
	})
	defer departments.Body.Close()
	if departments.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 saving departments, got %d", departments.StatusCode)
	}

	recipients := putJSON(t, app, cookie, "/api/settings/app", map[string]any{
		"email_recipients": map[string]any{
			"leave_request": []string{"hr@example.com"},
		},
	})
	defer recipients.Body.Close()
	if recipients.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 saving recipients, got %d", recipients.StatusCode)
	}

	loaded := getJSON(t, app, cookie, "/api/settings/app")
	defer loaded.Body.Close()
	payload := decodeJSONBody(t, loaded.Body)
	departmentList, _ := payload["departments"].([]any)
	if len(departmentList) != 2 {
		t.Fatalf("expected 2 departments, got %v", payload["departments"])
	}
}

func TestSaveAppSettings_RejectsInvalidSections(t *testing.T) {
	app, _, database := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "StrongPass1")
	cookie := loginTestUser(t, app, "admin@example.com", "StrongPass1")

	duplicate := putJSON(t, app, cookie, "/api/settings/app", map[string]any{
		"departments": []string{"Engineering", "engineering"},
	})
	defer duplicate.Body.Close()
	if duplicate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate departments, got %d", duplicate.StatusCode)
	}

	tooMany := putJSON(t, app, cookie, "/api/settings/app", map[string]any{
		"email_recipients": map[string]any{
			"leave_request": []string{"a@x.id", "b@x.id", "c@x.id", "d@x.id", "e@x.id", "f@x.id"},
		},
	})
	defer tooMany.Body.Close()
	if tooMany.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for more than 5 recipients, got %d", tooMany.StatusCode)
	}
}

func TestSaveAppSettings_SMTPPasswordIsNeverEchoed(t *testing.T) {
	app, _, database := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "StrongPass1")
	cookie := loginTestUser(t, app, "admin@example.com", "StrongPass1")

	saved := putJSON(t, app, cookie, "/api/settings/app", map[string]any{
		"smtp_settings": map[string]any{
			"host":     "smtp.gmail.com",
			"port":     465,
			"secure":   true,
			"username": "noreply@example.com",
			"password": "app-password",
		},
	})
	defer saved.Body.Close()
	if saved.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", saved.StatusCode)
	}

	payload := decodeJSONBody(t, saved.Body)
	smtp, _ := payload["smtp_settings"].(map[string]any)
	if _, leaked := smtp["password"]; leaked {
		t.Fatal("expected the SMTP password to be withheld from responses")
	}
	if smtp["configured"] != true {
		t.Fatalf("expected configured flag, got %v", smtp["configured"])
	}
}
