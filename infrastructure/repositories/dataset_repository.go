package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// D2DataSetRepository implements DataSetRepository against the remote Web
// API.
type D2DataSetRepository struct {
	client dhis2.Client
	api    *datasetAPI
	chunks config.ChunkConfig
	logger *logging.Logger
}

var _ contracts.DataSetRepository = (*D2DataSetRepository)(nil)

// NewD2DataSetRepository creates a DataSet repository bound to the remote
// instance described by the resolved metadata.
func NewD2DataSetRepository(client dhis2.Client, metadata *dataset.MetadataItem, chunks config.ChunkConfig) *D2DataSetRepository {
	return &D2DataSetRepository{
		client: client,
		api:    newDatasetAPI(client, metadata, chunks),
		chunks: chunks,
		logger: logging.Default().WithComponent("dataset_repository"),
	}
}

func (r *D2DataSetRepository) Get(ctx context.Context, options contracts.GetDataSetsOptions) (*dataset.Paginated[dataset.DataSet], error) {
	return r.api.get(ctx, options)
}

// GetAll walks the whole collection page by page.
func (r *D2DataSetRepository) GetAll(ctx context.Context) ([]dataset.DataSet, error) {
	return dhis2.FetchAllPages(r.chunks.DataSetPage,
		func(page, pageSize int) ([]dataset.DataSet, dhis2.D2Pager, error) {
			res, err := r.api.get(ctx, contracts.GetDataSetsOptions{
				Page:            page,
				PageSize:        pageSize,
				SortField:       "name",
				SortOrder:       contracts.SortAsc,
				IncludeOrgUnits: true,
			})
			if err != nil {
				return nil, dhis2.D2Pager{}, err
			}
			pager := dhis2.D2Pager{Page: res.Page, PageCount: res.PageCount}
			return res.Data, pager, nil
		})
}

// GetByIDs fetches the given DataSets in chunked batches, fully aggregated
// and with org units included.
func (r *D2DataSetRepository) GetByIDs(ctx context.Context, ids []string) ([]dataset.DataSet, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return dhis2.FetchByIDsChunked(ids, r.chunks.FetchByIDs,
		func(chunk []string) ([]dataset.DataSet, error) {
			res, err := r.api.get(ctx, contracts.GetDataSetsOptions{
				Page:            1,
				PageSize:        len(chunk),
				IDs:             chunk,
				IncludeOrgUnits: true,
			})
			if err != nil {
				return nil, err
			}
			return res.Data, nil
		})
}

// Save persists DataSets chunk by chunk. Each chunk is a read-modify-write:
// the current owner fields are fetched, the edited fields overlaid, and the
// result posted as one metadata import. A target id missing from the remote
// collection aborts the whole save.
func (r *D2DataSetRepository) Save(ctx context.Context, dataSets []dataset.DataSet) error {
	if len(dataSets) == 0 {
		return nil
	}

	byID := make(map[string]dataset.DataSet, len(dataSets))
	ids := make([]string, 0, len(dataSets))
	for _, ds := range dataSets {
		byID[ds.ID] = ds
		ids = append(ids, ds.ID)
	}

	err := dhis2.ForEachIDChunk(ids, r.chunks.Save, func(chunk []string) error {
		existing, err := r.client.GetDataSetsOwner(ctx, dhis2.Query{
			Fields:  ":owner",
			Filters: []string{dhis2.Filter("id", "in", chunk...)},
		})
		if err != nil {
			return err
		}

		payloads := make([]dhis2.D2DataSetPayload, 0, len(chunk))
		for _, id := range chunk {
			owner := findOwnerRecord(existing.DataSets, id)
			if owner == nil {
				return fmt.Errorf("%w: %s", contracts.ErrDataSetNotFound, id)
			}
			payloads = append(payloads, r.buildPayload(byID[id], owner))
		}

		if _, err := r.client.PostMetadata(ctx, dhis2.MetadataPayload{DataSets: payloads}, dhis2.ImportStrategyCreateAndUpdate); err != nil {
			return err
		}
		r.logger.Info("saved dataSets", "count", len(payloads))
		return nil
	})
	if err != nil {
		return fmt.Errorf("save dataSets: %w", err)
	}
	return nil
}

// Remove deletes DataSets chunk by chunk through metadata DELETE imports.
func (r *D2DataSetRepository) Remove(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := dhis2.ForEachIDChunk(ids, r.chunks.Remove, func(chunk []string) error {
		refs := make([]dhis2.D2Ref, 0, len(chunk))
		for _, id := range chunk {
			refs = append(refs, dhis2.D2Ref{ID: id})
		}
		if _, err := r.client.PostMetadata(ctx, dhis2.MetadataDeletePayload{DataSets: refs}, dhis2.ImportStrategyDelete); err != nil {
			return err
		}
		r.logger.Info("removed dataSets", "count", len(chunk))
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove dataSets: %w", err)
	}
	return nil
}

// buildPayload overlays the edited fields onto the remote owner record.
func (r *D2DataSetRepository) buildPayload(ds dataset.DataSet, existing map[string]json.RawMessage) dhis2.D2DataSetPayload {
	return dhis2.D2DataSetPayload{
		ID:                ds.ID,
		Name:              ds.Name,
		ShortName:         ds.ShortName,
		Description:       ds.Description,
		PublicAccess:      ds.FullAccessString(),
		UserAccesses:      toD2Access(ds.AccessByType(dataset.AccessTypeUsers)),
		UserGroupAccesses: toD2Access(ds.AccessByType(dataset.AccessTypeGroups)),
		OrganisationUnits: toD2Refs(ds.OrgUnits),
		AttributeValues:   r.buildAttributeValues(ds, existing),
		Extra:             existing,
	}
}

// buildAttributeValues upserts the project attribute into the existing
// attribute values, leaving every other attribute untouched. Without a
// project the existing values are carried through unchanged.
func (r *D2DataSetRepository) buildAttributeValues(ds dataset.DataSet, existing map[string]json.RawMessage) []dhis2.D2AttributeValue {
	var existingValues []dhis2.D2AttributeValue
	if raw, ok := existing["attributeValues"]; ok {
		if err := json.Unmarshal(raw, &existingValues); err != nil {
			r.logger.Warn("undecodable attributeValues on remote dataSet", "dataset_id", ds.ID, "error", err.Error())
			existingValues = nil
		}
	}
	if ds.Project == nil {
		return existingValues
	}

	projectAttributeID := r.api.metadata.ProjectAttribute.ID
	for i, av := range existingValues {
		if av.Attribute.ID == projectAttributeID {
			existingValues[i].Value = ds.Project.ID
			return existingValues
		}
	}
	return append(existingValues, dhis2.D2AttributeValue{
		Attribute: dhis2.D2Ref{ID: projectAttributeID},
		Value:     ds.Project.ID,
	})
}

func findOwnerRecord(records []map[string]json.RawMessage, id string) map[string]json.RawMessage {
	quoted, _ := json.Marshal(id)
	for _, record := range records {
		if raw, ok := record["id"]; ok && string(raw) == string(quoted) {
			return record
		}
	}
	return nil
}

func toD2Access(access []dataset.AccessData) []dhis2.D2Access {
	out := make([]dhis2.D2Access, 0, len(access))
	for _, a := range access {
		out = append(out, dhis2.D2Access{ID: a.ID, DisplayName: a.Name, Access: a.Value})
	}
	return out
}

func toD2Refs(orgUnits []dataset.OrgUnit) []dhis2.D2Ref {
	refs := make([]dhis2.D2Ref, 0, len(orgUnits))
	for _, ou := range orgUnits {
		refs = append(refs, dhis2.D2Ref{ID: ou.ID})
	}
	return refs
}
