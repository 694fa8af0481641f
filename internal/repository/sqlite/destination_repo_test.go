package sqlite

import (
	"context"
	"errors"
	"testing"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

func TestDestinationRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	desc := "white sand and palms"
	fields := testFields("Goa Beach", "Goa, India", "₹5,000-10,000", 8.5)
	fields.Description = &desc

	id, err := repo.Create(ctx, fields)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == 0 {
		t.Fatal("Create returned zero id")
	}

	dest, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if dest.Name != "Goa Beach" || dest.Location != "Goa, India" {
		t.Fatalf("unexpected destination %+v", dest)
	}
	if dest.Price != "₹5,000-10,000" {
		t.Fatalf("price text must be stored verbatim, got %q", dest.Price)
	}
	if dest.Description == nil || *dest.Description != desc {
		t.Fatalf("unexpected description %v", dest.Description)
	}

	if _, err := repo.FindByID(ctx, id+100); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("FindByID on missing row = %v, want ErrNotFound", err)
	}
}

func TestDestinationRepo_CreateWithImages(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	paths := []string{"app_images/a.jpg", "app_images/b.jpg"}
	id, err := repo.CreateWithImages(ctx, testFields("Pokhara", "Nepal", "$120", 7.0), paths)
	if err != nil {
		t.Fatalf("CreateWithImages returned error: %v", err)
	}

	stored, err := NewImageRepo(db).ListPathsByDestination(ctx, id)
	if err != nil {
		t.Fatalf("ListPathsByDestination returned error: %v", err)
	}
	if len(stored) != 2 || stored[0] != paths[0] || stored[1] != paths[1] {
		t.Fatalf("stored image paths = %v, want %v", stored, paths)
	}
}

func TestDestinationRepo_CreateWithImages_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	// The empty path violates the images CHECK constraint after the
	// destination row and the first image row were already inserted.
	_, err := repo.CreateWithImages(ctx, testFields("Broken", "Nowhere", "$1", 1), []string{"app_images/ok.jpg", ""})
	if !errors.Is(err, ports.ErrTransactionAborted) {
		t.Fatalf("CreateWithImages = %v, want ErrTransactionAborted", err)
	}

	if n := countRows(t, db, "destinations"); n != 0 {
		t.Fatalf("destinations table has %d rows after rollback, want 0", n)
	}
	if n := countRows(t, db, "images"); n != 0 {
		t.Fatalf("images table has %d rows after rollback, want 0", n)
	}
}

func TestDestinationRepo_Update(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	id := mustCreateDestination(t, db, testFields("Old Name", "Old Place", "$10", 2))

	if err := repo.Update(ctx, id, testFields("New Name", "New Place", "$20 - $40", 9.1)); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	dest, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if dest.Name != "New Name" || dest.Location != "New Place" || dest.Price != "$20 - $40" || dest.Popularity != 9.1 {
		t.Fatalf("update did not replace scalar fields: %+v", dest)
	}

	if err := repo.Update(ctx, id+100, testFields("X", "Y", "$1", 1)); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("Update on missing row = %v, want ErrNotFound", err)
	}
}

func TestDestinationRepo_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)
	imageRepo := NewImageRepo(db)
	savedRepo := NewSavedRepo(db)
	reviewRepo := NewReviewRepo(db)

	destID, err := repo.CreateWithImages(ctx, testFields("Doomed", "Gone", "$5", 3),
		[]string{"app_images/1.jpg", "app_images/2.jpg", "app_images/3.jpg"})
	if err != nil {
		t.Fatalf("CreateWithImages returned error: %v", err)
	}

	userA := mustCreateUser(t, db, "alice")
	userB := mustCreateUser(t, db, "bob")
	for _, uid := range []int64{userA, userB} {
		if err := savedRepo.Save(ctx, uid, destID); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		if _, err := reviewRepo.Create(ctx, &domain.Review{
			DestinationID: destID, UserID: userA, Username: "alice", Rating: 4,
		}); err != nil {
			t.Fatalf("review Create returned error: %v", err)
		}
	}

	if err := repo.Delete(ctx, destID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	images, err := imageRepo.ListByDestination(ctx, destID)
	if err != nil || len(images) != 0 {
		t.Fatalf("images after delete = %v (err %v), want empty", images, err)
	}
	reviews, err := reviewRepo.ListByDestination(ctx, destID)
	if err != nil || len(reviews) != 0 {
		t.Fatalf("reviews after delete = %v (err %v), want empty", reviews, err)
	}
	if n := countRows(t, db, "saved_links"); n != 0 {
		t.Fatalf("saved_links after delete = %d rows, want 0", n)
	}
	for _, uid := range []int64{userA, userB} {
		saved, err := savedRepo.IsSaved(ctx, uid, destID)
		if err != nil || saved {
			t.Fatalf("IsSaved(%d) after delete = %v (err %v), want false", uid, saved, err)
		}
	}

	if err := repo.Delete(ctx, destID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestDestinationRepo_ListOrdering(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	mustCreateDestination(t, db, testFields("banff", "Canada", "$300", 9.0))
	mustCreateDestination(t, db, testFields("Agra", "India", "$40", 7.5))
	mustCreateDestination(t, db, testFields("Cusco", "Peru", "$150", 8.0))

	byName, err := repo.List(ctx, domain.SortByName)
	if err != nil {
		t.Fatalf("List(name) returned error: %v", err)
	}
	wantNames := []string{"Agra", "banff", "Cusco"}
	for i, w := range wantNames {
		if byName[i].Name != w {
			t.Fatalf("List(name) order = %v, want %v", names(byName), wantNames)
		}
	}

	byPop, err := repo.List(ctx, domain.SortByPopularity)
	if err != nil {
		t.Fatalf("List(popularity) returned error: %v", err)
	}
	wantPop := []string{"banff", "Cusco", "Agra"}
	for i, w := range wantPop {
		if byPop[i].Name != w {
			t.Fatalf("List(popularity) order = %v, want %v", names(byPop), wantPop)
		}
	}
}

func TestDestinationRepo_Search(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDestinationRepo(db)

	mustCreateDestination(t, db, testFields("Sunny Beach", "Bulgaria", "$60", 6.0))
	mustCreateDestination(t, db, testFields("Alpine Lodge", "Beachwood Valley", "$200", 7.0))
	mustCreateDestination(t, db, testFields("City Lights", "Tokyo", "$400", 9.5))

	got, err := repo.Search(ctx, "BEACH")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := []string{"Alpine Lodge", "Sunny Beach"}
	if len(got) != len(want) {
		t.Fatalf("Search matched %v, want %v", names(got), want)
	}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("Search order = %v, want %v", names(got), want)
		}
	}

	none, err := repo.Search(ctx, "volcano")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("Search for absent term matched %v, want none", names(none))
	}
}

func names(dests []domain.Destination) []string {
	out := make([]string, len(dests))
	for i, d := range dests {
		out[i] = d.Name
	}
	return out
}
