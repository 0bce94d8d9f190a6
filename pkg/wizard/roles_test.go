package wizard

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwizard/pkg/options"
)

func TestDeriveRoleView(t *testing.T) {
	catalog := options.MustDefault()

	cases := []struct {
		name       string
		department string
		vacancy    string
		want       RoleView
	}{
		{
			name: "empty department",
			want: RoleView{Roles: []string{}},
		},
		{
			name:       "unknown department",
			department: "Legal",
			vacancy:    "Counsel",
			want:       RoleView{Department: "Legal", Roles: []string{}},
		},
		{
			name:       "known department keeps matching vacancy",
			department: "Sales",
			vacancy:    "Account Manager",
			want: RoleView{
				Department: "Sales",
				Vacancy:    "Account Manager",
				Roles:      []string{"Sales Manager", "Account Manager"},
				Enabled:    true,
			},
		},
		{
			name:       "foreign vacancy is reset",
			department: "Sales",
			vacancy:    "Front End",
			want: RoleView{
				Department: "Sales",
				Roles:      []string{"Sales Manager", "Account Manager"},
				Enabled:    true,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveRoleView(catalog, tc.department, tc.vacancy)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("role view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBusUnsubscribeOnlyRemovesOwnRegistration(t *testing.T) {
	b := newBus()
	noop := func(context.Context, Event) (Result, error) { return Result{}, nil }

	first := b.subscribe(EventConfirm, noop)
	second := b.subscribe(EventConfirm, noop)

	first()
	if _, ok := b.lookup(EventConfirm); !ok {
		t.Fatalf("stale unsubscribe removed a newer handler")
	}
	second()
	if _, ok := b.lookup(EventConfirm); ok {
		t.Fatalf("handler still subscribed")
	}
}
