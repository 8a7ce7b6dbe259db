package repositories

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// Codes of the metadata objects this service depends on.
const (
	attributeCodeProject      = "GL_DATASET_PROJECT"
	attributeCodeCreatedByApp = "GL_CREATED_BY_DATASET_CONFIGURATION"
	categoryCodeProject       = "GL_Project"
)

const metadataCacheKey = "metadata-item"

// D2MetadataRepository resolves the configured attributes and categories
// once and caches them; they are fixed per instance.
type D2MetadataRepository struct {
	client dhis2.Client
	cache  *gocache.Cache
	logger *logging.Logger
}

var _ contracts.MetadataRepository = (*D2MetadataRepository)(nil)

// NewD2MetadataRepository creates a metadata repository.
func NewD2MetadataRepository(client dhis2.Client) *D2MetadataRepository {
	return &D2MetadataRepository{
		client: client,
		cache:  gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		logger: logging.Default().WithComponent("metadata_repository"),
	}
}

// Get resolves the project and created-by-app attributes and the project
// category, matching by code first and name second. Any missing object is a
// hard error: nothing downstream can work without them.
func (r *D2MetadataRepository) Get(ctx context.Context) (*dataset.MetadataItem, error) {
	if cached, ok := r.cache.Get(metadataCacheKey); ok {
		return cached.(*dataset.MetadataItem), nil
	}

	attributes, err := r.client.GetAttributes(ctx, dhis2.Query{
		Fields:  "id,name,code",
		Filters: []string{dhis2.Filter("identifiable", "in", attributeCodeProject, attributeCodeCreatedByApp)},
	})
	if err != nil {
		return nil, fmt.Errorf("get attributes: %w", err)
	}

	categories, err := r.client.GetCategories(ctx, dhis2.Query{
		Fields:  "id,name,code",
		Filters: []string{dhis2.Filter("identifiable", "in", categoryCodeProject)},
	})
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	projectAttribute, err := findCodedRef(attributeRefs(attributes.Attributes), "attributes", attributeCodeProject)
	if err != nil {
		return nil, err
	}
	createdByAppAttribute, err := findCodedRef(attributeRefs(attributes.Attributes), "attributes", attributeCodeCreatedByApp)
	if err != nil {
		return nil, err
	}
	projectCategory, err := findCodedRef(categoryRefs(categories.Categories), "categories", categoryCodeProject)
	if err != nil {
		return nil, err
	}

	metadata := &dataset.MetadataItem{
		ProjectAttribute:      projectAttribute,
		CreatedByAppAttribute: createdByAppAttribute,
		ProjectCategory:       projectCategory,
	}
	r.cache.Set(metadataCacheKey, metadata, gocache.NoExpiration)
	r.logger.Info("resolved instance metadata",
		"project_attribute", projectAttribute.ID,
		"created_by_app_attribute", createdByAppAttribute.ID,
		"project_category", projectCategory.ID,
	)
	return metadata, nil
}

func findCodedRef(refs []dataset.CodedRef, kind, code string) (dataset.CodedRef, error) {
	for _, ref := range refs {
		if ref.Code == code || ref.Name == code {
			return ref, nil
		}
	}
	return dataset.CodedRef{}, fmt.Errorf("%w: %s.code/name=%q", contracts.ErrMetadataNotFound, kind, code)
}

func attributeRefs(attributes []dhis2.D2Attribute) []dataset.CodedRef {
	refs := make([]dataset.CodedRef, 0, len(attributes))
	for _, a := range attributes {
		refs = append(refs, dataset.CodedRef{ID: a.ID, Name: a.Name, Code: a.Code})
	}
	return refs
}

func categoryRefs(categories []dhis2.D2Category) []dataset.CodedRef {
	refs := make([]dataset.CodedRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, dataset.CodedRef{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return refs
}
