package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/startupsole/solechat/pkg/domain/interfaces"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/repository/firestore"
	"github.com/startupsole/solechat/pkg/repository/memory"
)

func runFAQRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create creates FAQ with UUID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		faq := &model.FAQ{
			Question: fmt.Sprintf("EIN Nedir? (%d)", time.Now().UnixNano()),
			Answer:   "EIN, Amerika'da şirketler için verilen vergi kimlik numarasıdır.",
			Category: "vergi",
			Priority: 10,
		}

		created, err := repo.FAQ().Create(ctx, faq)
		if err != nil {
			t.Fatalf("failed to create FAQ: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Question != faq.Question {
			t.Errorf("expected Question=%s, got %s", faq.Question, created.Question)
		}
		if created.Answer != faq.Answer {
			t.Errorf("expected Answer=%s, got %s", faq.Answer, created.Answer)
		}
		if created.Category != faq.Category {
			t.Errorf("expected Category=%s, got %s", faq.Category, created.Category)
		}
		if created.Priority != faq.Priority {
			t.Errorf("expected Priority=%d, got %d", faq.Priority, created.Priority)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
	})

	t.Run("Create with provided ID preserves it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		customID := model.FAQID(fmt.Sprintf("custom-faq-%d", time.Now().UnixNano()))

		created, err := repo.FAQ().Create(ctx, &model.FAQ{
			ID:       customID,
			Question: "Custom ID question",
			Answer:   "Custom ID answer",
		})
		if err != nil {
			t.Fatalf("failed to create FAQ: %v", err)
		}

		if created.ID != customID {
			t.Errorf("expected ID=%s, got %s", customID, created.ID)
		}
	})

	t.Run("Get retrieves existing FAQ", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.FAQ().Create(ctx, &model.FAQ{
			Question: fmt.Sprintf("LLC nasıl kurulur? (%d)", time.Now().UnixNano()),
			Answer:   "Eyalet seçimi yapıldıktan sonra başvuru formu doldurulur.",
			Category: "şirket kuruluşu",
		})
		if err != nil {
			t.Fatalf("failed to create FAQ: %v", err)
		}

		retrieved, err := repo.FAQ().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get FAQ: %v", err)
		}

		if retrieved.ID != created.ID {
			t.Errorf("expected ID=%s, got %s", created.ID, retrieved.ID)
		}
		if retrieved.Question != created.Question {
			t.Errorf("expected Question=%s, got %s", created.Question, retrieved.Question)
		}
		if retrieved.Answer != created.Answer {
			t.Errorf("expected Answer=%s, got %s", created.Answer, retrieved.Answer)
		}
		if time.Since(retrieved.CreatedAt) > time.Minute {
			t.Errorf("CreatedAt time diff too large: %v", time.Since(retrieved.CreatedAt))
		}
	})

	t.Run("Get returns error for non-existent FAQ", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.FAQ().Get(ctx, "non-existent-id")
		if err == nil {
			t.Error("expected error for non-existent FAQ")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns all FAQs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		f1, err := repo.FAQ().Create(ctx, &model.FAQ{
			Question: fmt.Sprintf("Soru 1 (%d)", time.Now().UnixNano()),
			Answer:   "Cevap 1",
		})
		if err != nil {
			t.Fatalf("failed to create FAQ 1: %v", err)
		}

		f2, err := repo.FAQ().Create(ctx, &model.FAQ{
			Question: fmt.Sprintf("Soru 2 (%d)", time.Now().UnixNano()),
			Answer:   "Cevap 2",
		})
		if err != nil {
			t.Fatalf("failed to create FAQ 2: %v", err)
		}

		faqs, err := repo.FAQ().List(ctx)
		if err != nil {
			t.Fatalf("failed to list FAQs: %v", err)
		}

		foundF1 := false
		foundF2 := false
		for _, f := range faqs {
			if f.ID == f1.ID {
				foundF1 = true
			}
			if f.ID == f2.ID {
				foundF2 = true
			}
		}
		if !foundF1 {
			t.Error("FAQ 1 not found in list")
		}
		if !foundF2 {
			t.Error("FAQ 2 not found in list")
		}
	})

	t.Run("Delete removes existing FAQ", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.FAQ().Create(ctx, &model.FAQ{
			Question: fmt.Sprintf("Silinecek soru (%d)", time.Now().UnixNano()),
			Answer:   "Silinecek cevap",
		})
		if err != nil {
			t.Fatalf("failed to create FAQ: %v", err)
		}

		if err := repo.FAQ().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete FAQ: %v", err)
		}

		_, err = repo.FAQ().Get(ctx, created.ID)
		if err == nil {
			t.Error("expected error when getting deleted FAQ")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete returns error for non-existent FAQ", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.FAQ().Delete(ctx, "non-existent-id")
		if err == nil {
			t.Error("expected error for non-existent FAQ")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func newFirestoreFAQRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	// Test data isolation is achieved through random content in test data
	repo, err := firestore.New(ctx, projectID, databaseID)
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestMemoryFAQRepository(t *testing.T) {
	runFAQRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreFAQRepository(t *testing.T) {
	runFAQRepositoryTest(t, newFirestoreFAQRepository)
}
