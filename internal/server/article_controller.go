package server

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
	"github.com/taha-arar/blog/internal/repository"
)

const (
	contentMinLength = 5
	contentMaxLength = 10
)

// ArticleController serves the article routes
type ArticleController struct {
	Articles repository.Articles
	Authors  repository.Authors
	Logger   auth.Logger
}

// ArticlePayload is the create and update request body
type ArticlePayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID *int64 `json:"author_id"`
	Active   *bool  `json:"active"`
}

// Validate will validate the payload
func (p ArticlePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Content, validation.Required),
	)
}

// activeParam reads the required active query flag
func activeParam(c *fiber.Ctx) (bool, error) {
	raw := c.Query("active")
	if raw == "" {
		return false, errActiveFlagRequired()
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest(err)
	}
	return active, nil
}

// AssignAuthorPayload carries the author to attach to an article
type AssignAuthorPayload struct {
	AuthorID *int64 `json:"author_id"`
}

// Create saves a new article after checking the title is free and the
// author exists
func (a *ArticleController) Create(c *fiber.Ctx) error {
	payload := new(ArticlePayload)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}
	if n := len(payload.Content); n < contentMinLength || n > contentMaxLength {
		return errContentLength()
	}
	if payload.AuthorID == nil {
		return errAuthorRequired()
	}

	ctx := c.UserContext()

	taken, err := a.Articles.ExistsByTitle(ctx, payload.Title)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check article title")
	}
	if taken {
		return errDuplicateTitle(payload.Title)
	}

	if _, err := a.Authors.GetByID(ctx, *payload.AuthorID); err != nil {
		return err
	}

	article := &model.Article{
		Title:    payload.Title,
		Content:  payload.Content,
		AuthorID: payload.AuthorID,
		IsActive: true,
	}
	if payload.Active != nil {
		article.IsActive = *payload.Active
	}

	created, err := a.Articles.Create(ctx, article)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the title and content of an existing article
func (a *ArticleController) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(ArticlePayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}
	if n := len(payload.Content); n < contentMinLength || n > contentMaxLength {
		return errContentLength()
	}

	ctx := c.UserContext()

	article, err := a.Articles.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if payload.Title != article.Title {
		taken, err := a.Articles.ExistsByTitle(ctx, payload.Title)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to check article title")
		}
		if taken {
			return errDuplicateTitle(payload.Title)
		}
	}

	article.Title = payload.Title
	article.Content = payload.Content
	if payload.Active != nil {
		article.IsActive = *payload.Active
	}

	updated, err := a.Articles.Update(ctx, article)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// SetActive flips the active flag. Setting the flag an article already
// carries is rejected with a conflict.
func (a *ArticleController) SetActive(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	active, err := activeParam(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()

	article, err := a.Articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article.IsActive == active {
		return errStateAlreadySet(id, active)
	}

	article.IsActive = active
	updated, err := a.Articles.Update(ctx, article)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// AssignAuthor attaches an author to an article
func (a *ArticleController) AssignAuthor(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(AssignAuthorPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if payload.AuthorID == nil {
		return errAuthorRequired()
	}

	ctx := c.UserContext()

	article, err := a.Articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != nil && *article.AuthorID == *payload.AuthorID {
		return errAuthorAlreadyAssigned(id, *payload.AuthorID)
	}

	if _, err := a.Authors.GetByID(ctx, *payload.AuthorID); err != nil {
		return err
	}

	article.AuthorID = payload.AuthorID
	updated, err := a.Articles.Update(ctx, article)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Get returns a single article with its author
func (a *ArticleController) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	article, err := a.Articles.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(article)
}

// List returns every article
func (a *ArticleController) List(c *fiber.Ctx) error {
	records, err := a.Articles.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Page returns a page of articles
func (a *ArticleController) Page(c *fiber.Ctx) error {
	page, size := pagingParams(c)

	result, err := a.Articles.PageList(c.UserContext(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// PageSearch returns a page of articles matching the criteria
func (a *ArticleController) PageSearch(c *fiber.Ctx) error {
	page, size := pagingParams(c)

	result, err := a.Articles.PageSearch(c.UserContext(), c.Query("criteria"), page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
