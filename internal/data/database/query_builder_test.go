package database

import (
	"testing"
)

func TestBuildListQuery_BasicSelect(t *testing.T) {
	opts := NewListQueryOptions("jobs")
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithColumnsAndAlias(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithColumns("jobs.id", "jobs.trade", "clients.email AS client_email"),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT "jobs"."id", "jobs"."trade", "clients"."email" AS "client_email" FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WithJoin(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithColumns("jobs.id"),
		WithJoin(`LEFT JOIN "clients" ON "clients"."id" = "jobs"."client_id"`),
		WithCondition(WhereCond("jobs.status", Equal, "approved")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT "jobs"."id" FROM "jobs" LEFT JOIN "clients" ON "clients"."id" = "jobs"."client_id" WHERE "jobs"."status" = $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != "approved" {
		t.Errorf("Expected args [approved], got %v", args)
	}
}

func TestBuildListQuery_WhereEqualAndILike(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("status", Equal, "pending")),
		WithCondition(WhereCond("postcode", ILike, PrefixPattern("SW1"))),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "status" = $1 AND "postcode" ILIKE $2`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != "pending" || args[1] != "SW1%" {
		t.Errorf("Expected args [pending SW1%%], got %v", args)
	}
}

func TestBuildListQuery_WhereNotIn(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("id", NotIn, []string{"a", "b"})),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "id" NOT IN ($1, $2)`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != "a" || args[1] != "b" {
		t.Errorf("Expected args [a b], got %v", args)
	}
}

func TestBuildListQuery_WhereNotIn_EmptySliceSkipsClause(t *testing.T) {
	// NOT IN over an empty exclusion list must not emit any SQL.
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("id", NotIn, []string{})),
		WithCondition(WhereCond("status", Equal, "approved")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "status" = $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != "approved" {
		t.Errorf("Expected args [approved], got %v", args)
	}
}

func TestBuildListQuery_WhereNull(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereNull("assigned_tradesperson_id")),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "assigned_tradesperson_id" IS NULL`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_WhereOrGroup(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereOr(
			WhereCond("trade", Equal, "Electrician"),
			WhereCond("trade", ILike, ContainsPattern("Electric")),
			WhereCond("trade", ILike, ContainsPattern("Electrical")),
		)),
		WithCondition(WhereCond("is_flagged", Equal, false)),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE ("trade" = $1 OR "trade" ILIKE $2 OR "trade" ILIKE $3) AND "is_flagged" = $4`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 4 {
		t.Fatalf("Expected 4 args, got %d", len(args))
	}
	if args[0] != "Electrician" || args[1] != "%Electric%" || args[2] != "%Electrical%" || args[3] != false {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestBuildListQuery_WhereOrGroup_SingleMemberUnwrapped(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereOr(
			WhereCond("trade", Equal, "Roofer"),
			WhereCond("id", In, []string{}),
		)),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "trade" = $1`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 1 || args[0] != "Roofer" {
		t.Errorf("Expected args [Roofer], got %v", args)
	}
}

func TestBuildListQuery_WhereOrGroup_AllEmptySkipped(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereOr(
			WhereCond("id", In, []string{}),
			WhereCond("id", NotIn, []string{}),
		)),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestBuildListQuery_OrderLimitOffset(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("status", Equal, "approved")),
		WithOrderBy("created_at DESC", "id DESC"),
		WithLimit(10),
		WithOffset(20),
	)
	query, args := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" WHERE "status" = $1 ORDER BY "created_at" DESC, "id" DESC LIMIT $2 OFFSET $3`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 3 || args[0] != "approved" || args[1] != 10 || args[2] != 20 {
		t.Errorf("Expected args [approved 10 20], got %v", args)
	}
}

func TestBuildListQuery_OrderByRejectsBogusDirection(t *testing.T) {
	opts := NewListQueryOptions("jobs",
		WithOrderBy("created_at bogus"),
	)
	query, _ := BuildListQuery(opts)

	expected := `SELECT * FROM "jobs" ORDER BY "created_at"`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
}

func TestCountOptions_SamePredicateNoPagination(t *testing.T) {
	listing := NewListQueryOptions("jobs",
		WithColumns("id", "trade"),
		WithJoin(`LEFT JOIN "clients" ON "clients"."id" = "jobs"."client_id"`),
		WithCondition(WhereCond("status", Equal, "approved")),
		WithCondition(WhereCond("postcode", ILike, PrefixPattern("SW1"))),
		WithOrderBy("created_at DESC"),
		WithLimit(10),
		WithOffset(10),
	)

	query, args := BuildListQuery(CountOptions(listing))

	expected := `SELECT COUNT(*) FROM "jobs" LEFT JOIN "clients" ON "clients"."id" = "jobs"."client_id" WHERE "status" = $1 AND "postcode" ILIKE $2`
	if query != expected {
		t.Errorf("Expected query %q, got %q", expected, query)
	}
	if len(args) != 2 || args[0] != "approved" || args[1] != "SW1%" {
		t.Errorf("Expected args [approved SW1%%], got %v", args)
	}
}

func TestContainsPattern_EscapesLikeMetacharacters(t *testing.T) {
	if got := ContainsPattern("50%_off"); got != `%50\%\_off%` {
		t.Errorf("Expected escaped pattern, got %q", got)
	}
}
