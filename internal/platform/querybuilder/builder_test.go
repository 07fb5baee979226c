package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "full_name").
		From("players").
		Where(Eq("age_group", "Under 16"), IsNull("deleted_at")).
		OrderBy("full_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, full_name FROM players WHERE age_group = $1 AND deleted_at IS NULL ORDER BY full_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Under 16" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NotEqAndIsNotNull(t *testing.T) {
	query, args, err := Select("*").
		From("auction_players").
		Where(
			Eq("auction_id", "a1"),
			NotEq("position_number", -999),
			IsNotNull("team_id"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM auction_players WHERE auction_id = $1 AND position_number <> $2 AND team_id IS NOT NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "a1" || args[1] != -999 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("auctions").
		Columns("id", "name").
		Values("a1", "SPL Summer Auction").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO auctions (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "a1" || args[1] != "SPL Summer Auction" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("auctions").
		Set("name", "renamed").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "a1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE auctions SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "renamed" || args[1] != "a1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("auction_players").
		Where(Eq("auction_id", "a1"), Eq("player_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM auction_players WHERE auction_id = $1 AND player_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "a1" || args[1] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("auction_players").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without conditions")
	}
}
