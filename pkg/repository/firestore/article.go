package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// articleDoc is the Firestore document representation of model.Article.
// Embedding is stored as firestore.Vector32 so a vector index can be
// declared on the field.
type articleDoc struct {
	ID          model.ArticleID    `firestore:"ID"`
	Title       string             `firestore:"Title"`
	Content     string             `firestore:"Content"`
	Excerpt     string             `firestore:"Excerpt"`
	Link        string             `firestore:"Link"`
	PublishedAt time.Time          `firestore:"PublishedAt"`
	Embedding   firestore.Vector32 `firestore:"Embedding,omitempty"`
	CreatedAt   time.Time          `firestore:"CreatedAt"`
	UpdatedAt   time.Time          `firestore:"UpdatedAt"`
}

func toArticleDoc(a *model.Article) *articleDoc {
	doc := &articleDoc{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Link:        a.Link,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if len(a.Embedding) > 0 {
		doc.Embedding = firestore.Vector32(a.Embedding)
	}
	return doc
}

func fromArticleDoc(d *articleDoc) *model.Article {
	a := &model.Article{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Excerpt:     d.Excerpt,
		Link:        d.Link,
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if len(d.Embedding) > 0 {
		a.Embedding = []float32(d.Embedding)
	}
	return a
}

func docToArticle(doc *firestore.DocumentSnapshot) (*model.Article, error) {
	var d articleDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromArticleDoc(&d), nil
}

type articleRepository struct {
	client *firestore.Client
}

func newArticleRepository(client *firestore.Client) *articleRepository {
	return &articleRepository{client: client}
}

func (r *articleRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("blog_articles")
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) (*model.Article, error) {
	now := time.Now().UTC()
	if article.ID == "" {
		article.ID = model.NewArticleID()
	}
	article.CreatedAt = now
	article.UpdatedAt = now

	docRef := r.collection().Doc(string(article.ID))
	if _, err := docRef.Set(ctx, toArticleDoc(article)); err != nil {
		return nil, goerr.Wrap(err, "failed to create article")
	}

	return article, nil
}

func (r *articleRepository) Get(ctx context.Context, id model.ArticleID) (*model.Article, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get article", goerr.V("id", id))
	}

	a, err := docToArticle(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal article", goerr.V("id", id))
	}

	return a, nil
}

func (r *articleRepository) List(ctx context.Context) ([]*model.Article, error) {
	iter := r.collection().OrderBy("PublishedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	articles := make([]*model.Article, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate articles")
		}

		a, err := docToArticle(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal article")
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func (r *articleRepository) UpdateEmbedding(ctx context.Context, id model.ArticleID, embedding []float32) error {
	docRef := r.collection().Doc(string(id))

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "Embedding", Value: firestore.Vector32(embedding)},
		{Path: "UpdatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to update article embedding", goerr.V("id", id))
	}

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id model.ArticleID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "article not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get article", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete article", goerr.V("id", id))
	}

	return nil
}
