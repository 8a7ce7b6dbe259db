package dhis2

import "encoding/json"

// Raw JSON shapes returned by the DHIS2 Web API. Field selections are kept
// to what the repositories actually consume.

// D2Pager is the paging envelope of DHIS2 list responses.
type D2Pager struct {
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// D2Ref is a bare object reference.
type D2Ref struct {
	ID string `json:"id"`
}

// D2AttributeValue is one attribute value attached to a metadata object.
type D2AttributeValue struct {
	Attribute D2Ref  `json:"attribute"`
	Value     string `json:"value"`
}

// D2Access is a user or user-group access entry on a metadata object.
type D2Access struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Access      string `json:"access"`
}

// D2Section is a DataSet section; its code carries the competency naming
// convention.
type D2Section struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Code        string `json:"code"`
}

// D2OrgUnit is an organisation unit reference with its hierarchy path.
type D2OrgUnit struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Path        string `json:"path"`
}

// D2Sharing is the sharing block of a metadata object.
type D2Sharing struct {
	Public string `json:"public"`
}

// D2DataSet is the raw DataSet record as fetched for aggregation.
type D2DataSet struct {
	ID                 string             `json:"id"`
	DisplayName        string             `json:"displayName"`
	DisplayShortName   string             `json:"displayShortName"`
	DisplayDescription string             `json:"displayDescription"`
	Created            string             `json:"created"`
	LastUpdated        string             `json:"lastUpdated"`
	Sharing            D2Sharing          `json:"sharing"`
	Sections           []D2Section        `json:"sections"`
	UserAccesses       []D2Access         `json:"userAccesses"`
	UserGroupAccesses  []D2Access         `json:"userGroupAccesses"`
	AttributeValues    []D2AttributeValue `json:"attributeValues"`
	OrganisationUnits  []D2OrgUnit        `json:"organisationUnits,omitempty"`
}

// DataSetsResponse is one page of DataSets.
type DataSetsResponse struct {
	Pager    D2Pager     `json:"pager"`
	DataSets []D2DataSet `json:"dataSets"`
}

// D2CategoryOption backs a Project.
type D2CategoryOption struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	LastUpdated string `json:"lastUpdated"`
}

// CategoryOptionsResponse is one page of category options.
type CategoryOptionsResponse struct {
	Pager           D2Pager            `json:"pager"`
	CategoryOptions []D2CategoryOption `json:"categoryOptions"`
}

// D2Attribute is a metadata attribute definition.
type D2Attribute struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// AttributesResponse is one page of attributes.
type AttributesResponse struct {
	Pager      D2Pager       `json:"pager"`
	Attributes []D2Attribute `json:"attributes"`
}

// D2Category is a category definition.
type D2Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// CategoriesResponse is one page of categories.
type CategoriesResponse struct {
	Pager      D2Pager      `json:"pager"`
	Categories []D2Category `json:"categories"`
}

// D2DataElementGroup is a member of a data element group set.
type D2DataElementGroup struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Code        string `json:"code"`
}

// D2DataElementGroupSet classifies data element groups; the competency
// catalog is derived from one of these.
type D2DataElementGroupSet struct {
	ID                string               `json:"id"`
	DataElementGroups []D2DataElementGroup `json:"dataElementGroups"`
}

// DataElementGroupSetsResponse is one page of data element group sets.
type DataElementGroupSetsResponse struct {
	Pager                D2Pager                 `json:"pager"`
	DataElementGroupSets []D2DataElementGroupSet `json:"dataElementGroupSets"`
}

// D2DataSetPayload is the owner-field shape posted back on saves. Extra
// holds owner fields fetched from the remote object that this service does
// not model; they are carried through untouched so a save never drops them.
type D2DataSetPayload struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	ShortName         string             `json:"shortName"`
	Description       string             `json:"description"`
	PublicAccess      string             `json:"publicAccess"`
	UserAccesses      []D2Access         `json:"userAccesses"`
	UserGroupAccesses []D2Access         `json:"userGroupAccesses"`
	OrganisationUnits []D2Ref            `json:"organisationUnits"`
	AttributeValues   []D2AttributeValue `json:"attributeValues"`

	Extra map[string]json.RawMessage `json:"-"`
}

// MarshalJSON merges the modelled fields over the carried-through owner
// fields.
func (p D2DataSetPayload) MarshalJSON() ([]byte, error) {
	type payload D2DataSetPayload
	modelled, err := json.Marshal(payload(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return modelled, nil
	}

	merged := make(map[string]json.RawMessage, len(p.Extra)+8)
	for k, v := range p.Extra {
		merged[k] = v
	}
	var own map[string]json.RawMessage
	if err := json.Unmarshal(modelled, &own); err != nil {
		return nil, err
	}
	for k, v := range own {
		merged[k] = v
	}
	// The sharing block would conflict with the flat access fields.
	delete(merged, "sharing")
	return json.Marshal(merged)
}

// DataSetsOwnerResponse carries raw owner-field records, used by the save
// path to overlay edits without dropping fields this service does not model.
type DataSetsOwnerResponse struct {
	DataSets []map[string]json.RawMessage `json:"dataSets"`
}

// MetadataPayload is the body of a metadata post.
type MetadataPayload struct {
	DataSets []D2DataSetPayload `json:"dataSets,omitempty"`
}

// MetadataDeletePayload is the body of a metadata delete post.
type MetadataDeletePayload struct {
	DataSets []D2Ref `json:"dataSets"`
}

// MetadataResponse is the import summary of a metadata post.
type MetadataResponse struct {
	Status string `json:"status"`
	Stats  struct {
		Created int `json:"created"`
		Updated int `json:"updated"`
		Deleted int `json:"deleted"`
		Ignored int `json:"ignored"`
	} `json:"stats"`
}

// D2User is the authenticated user.
type D2User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
}

// D2SharingCandidate is a user or user group matched by the sharing search.
type D2SharingCandidate struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// SharingSearchResponse is the result of a sharing search.
type SharingSearchResponse struct {
	Users      []D2SharingCandidate `json:"users"`
	UserGroups []D2SharingCandidate `json:"userGroups"`
}
