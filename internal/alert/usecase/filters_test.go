package usecase

import (
	"testing"

	"rockguard-srv/internal/model"
)

func TestByRole(t *testing.T) {
	miner := model.Recipient{Role: model.RoleMiner}
	admin := model.Recipient{Role: model.RoleAdmin}

	t.Run("empty roles match everyone", func(t *testing.T) {
		f := byRole(nil)
		if !f(miner) || !f(admin) {
			t.Error("empty role filter should match all recipients")
		}
	})

	t.Run("role match is case-insensitive", func(t *testing.T) {
		f := byRole([]string{" MINER "})
		if !f(miner) {
			t.Error("MINER should match miner")
		}
		if f(admin) {
			t.Error("MINER should not match admin")
		}
	})
}

func TestByLocation(t *testing.T) {
	tunnel := model.Recipient{Location: "Tunnel A - Section 2"}
	shaft := model.Recipient{Location: "Main Shaft"}

	t.Run("empty locations match everyone", func(t *testing.T) {
		f := byLocation(nil)
		if !f(tunnel) || !f(shaft) {
			t.Error("empty location filter should match all recipients")
		}
	})

	t.Run("blank fragments are ignored", func(t *testing.T) {
		f := byLocation([]string{"  ", ""})
		if !f(tunnel) || !f(shaft) {
			t.Error("blank fragments should match all recipients")
		}
	})

	t.Run("fragment matches as substring", func(t *testing.T) {
		f := byLocation([]string{"tunnel a"})
		if !f(tunnel) {
			t.Error("tunnel a should match Tunnel A - Section 2")
		}
		if f(shaft) {
			t.Error("tunnel a should not match Main Shaft")
		}
	})

	t.Run("any fragment matching is enough", func(t *testing.T) {
		f := byLocation([]string{"Control Room", "Shaft"})
		if !f(shaft) {
			t.Error("Shaft fragment should match Main Shaft")
		}
	})
}

func TestMatchAll(t *testing.T) {
	minerInTunnel := model.Recipient{Role: model.RoleMiner, Location: "Tunnel B"}
	adminInTunnel := model.Recipient{Role: model.RoleAdmin, Location: "Tunnel B"}

	f := matchAll(byRole([]string{model.RoleMiner}), byLocation([]string{"Tunnel"}))
	if !f(minerInTunnel) {
		t.Error("miner in tunnel should match both filters")
	}
	if f(adminInTunnel) {
		t.Error("admin in tunnel should fail the role filter")
	}
}

func TestFilterRecipients(t *testing.T) {
	got := filterRecipients(siteRoster(), byRole([]string{model.RoleAdmin}))
	if len(got) != 2 {
		t.Fatalf("matched count: got %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Role != model.RoleAdmin {
			t.Errorf("non-admin matched: %+v", r)
		}
	}
}
