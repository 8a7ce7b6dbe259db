package repositories

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// competencyGroupSetCode identifies the data element group set whose groups
// form the core-competency catalog.
const competencyGroupSetCode = "GL_CoreComp_DEGROUPSET"

const competencyCacheKey = "core-competencies"

// Field selections for DataSet queries.
const (
	dataSetFields = "id,displayName,displayShortName,displayDescription,created,lastUpdated," +
		"sharing[public],sections[id,displayName,code]," +
		"userAccesses[id,displayName,access],userGroupAccesses[id,displayName,access]," +
		"attributeValues[value,attribute[id]]"
	dataSetOrgUnitFields = ",organisationUnits[id,displayName,path]"
)

// datasetAPI is the shared DataSet fetch plumbing used by both the DataSet
// and Project repositories: it runs the list queries and recombines the raw
// records with the competency and project catalogs.
type datasetAPI struct {
	client   dhis2.Client
	metadata *dataset.MetadataItem
	chunks   config.ChunkConfig
	mapper   *datasetMapper
	cache    *gocache.Cache
	logger   *logging.Logger
}

func newDatasetAPI(client dhis2.Client, metadata *dataset.MetadataItem, chunks config.ChunkConfig) *datasetAPI {
	return &datasetAPI{
		client:   client,
		metadata: metadata,
		chunks:   chunks,
		mapper:   newDatasetMapper(metadata.ProjectAttribute.ID),
		cache:    gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		logger:   logging.Default().WithComponent("dataset_api"),
	}
}

// get retrieves one page of DataSets, aggregated with competencies and
// projects.
func (a *datasetAPI) get(ctx context.Context, options contracts.GetDataSetsOptions) (*dataset.Paginated[dataset.DataSet], error) {
	competencies, err := a.competencyCatalog(ctx)
	if err != nil {
		return nil, err
	}

	res, err := a.client.GetDataSets(ctx, a.buildQuery(options))
	if err != nil {
		return nil, err
	}

	projects, err := a.projectsByIDs(ctx, a.projectIDs(res.DataSets))
	if err != nil {
		return nil, err
	}

	dataSets := make([]dataset.DataSet, 0, len(res.DataSets))
	for _, d2 := range res.DataSets {
		dataSets = append(dataSets, a.mapper.buildDataSet(d2, competencies, projects))
	}

	return &dataset.Paginated[dataset.DataSet]{
		Page:      res.Pager.Page,
		PageSize:  res.Pager.PageSize,
		PageCount: res.Pager.PageCount,
		Total:     res.Pager.Total,
		Data:      dataSets,
	}, nil
}

func (a *datasetAPI) buildQuery(options contracts.GetDataSetsOptions) dhis2.Query {
	fields := dataSetFields
	if options.IncludeOrgUnits {
		fields += dataSetOrgUnitFields
	}

	// DataSets are selected by app attributes: either "created by this app"
	// or, when filtering by projects, the project attribute pointing at one
	// of the requested projects.
	var filters []string
	if len(options.ProjectIDs) > 0 {
		filters = append(filters,
			dhis2.Filter("attributeValues.attribute.id", "in", a.metadata.ProjectAttribute.ID),
			dhis2.Filter("attributeValues.value", "in", options.ProjectIDs...),
		)
	} else {
		filters = append(filters,
			dhis2.Filter("attributeValues.attribute.id", "in", a.metadata.CreatedByAppAttribute.ID),
			dhis2.Filter("attributeValues.value", "eq", "true"),
		)
	}
	if options.Search != "" {
		filters = append(filters, dhis2.Filter("identifiable", "token", options.Search))
	}
	if len(options.IDs) > 0 {
		filters = append(filters, dhis2.Filter("id", "in", options.IDs...))
	}

	order := "name:asc"
	if options.SortField != "" {
		order = fmt.Sprintf("%s:%s", options.SortField, options.SortOrder)
	}

	return dhis2.Query{
		Fields:   fields,
		Filters:  filters,
		Order:    order,
		Page:     options.Page,
		PageSize: options.PageSize,
	}
}

// projectIDs collects the distinct project attribute values of the given
// records, preserving first-seen order.
func (a *datasetAPI) projectIDs(d2DataSets []dhis2.D2DataSet) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, d2 := range d2DataSets {
		id := a.mapper.projectAttributeValue(d2)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// projectsByIDs resolves category options to Projects in chunked batches.
func (a *datasetAPI) projectsByIDs(ctx context.Context, ids []string) ([]dataset.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	options, err := dhis2.FetchByIDsChunked(ids, a.chunks.CategoryOptions,
		func(chunk []string) ([]dhis2.D2CategoryOption, error) {
			res, err := a.client.GetCategoryOptions(ctx, dhis2.Query{
				Fields:  "id,displayName,lastUpdated",
				Filters: []string{dhis2.Filter("id", "in", chunk...)},
			})
			if err != nil {
				return nil, err
			}
			return res.CategoryOptions, nil
		})
	if err != nil {
		return nil, fmt.Errorf("resolve projects: %w", err)
	}

	projects := make([]dataset.Project, 0, len(options))
	for _, co := range options {
		projects = append(projects, dataset.Project{
			ID:          co.ID,
			Name:        co.DisplayName,
			LastUpdated: co.LastUpdated,
		})
	}
	return projects, nil
}

// competencyCatalog fetches the core-competency catalog, caching it for the
// lifetime of the process; the backing group set is effectively immutable
// per instance. A missing group set is a hard error.
func (a *datasetAPI) competencyCatalog(ctx context.Context) ([]dataset.CoreCompetency, error) {
	if cached, ok := a.cache.Get(competencyCacheKey); ok {
		return cached.([]dataset.CoreCompetency), nil
	}

	res, err := a.client.GetDataElementGroupSets(ctx, dhis2.Query{
		Fields:  "id,dataElementGroups[id,displayName,code]",
		Filters: []string{dhis2.Filter("code", "eq", competencyGroupSetCode)},
	})
	if err != nil {
		return nil, err
	}
	if len(res.DataElementGroupSets) == 0 {
		return nil, fmt.Errorf("dataElementGroupSet with code %s not found", competencyGroupSetCode)
	}

	groups := res.DataElementGroupSets[0].DataElementGroups
	competencies := make([]dataset.CoreCompetency, 0, len(groups))
	for _, deg := range groups {
		competencies = append(competencies, dataset.CoreCompetency{
			ID:   deg.ID,
			Name: deg.DisplayName,
			Code: deg.Code,
		})
	}
	a.cache.Set(competencyCacheKey, competencies, gocache.NoExpiration)
	return competencies, nil
}
