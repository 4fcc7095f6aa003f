package dashboard

// Bucket is a single row of a grouped count, such as residents per sitio.
type Bucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type Summary struct {
	Households       int64    `json:"households"`
	Residents        int64    `json:"residents"`
	Users            int64    `json:"users"`
	Blotters         int64    `json:"blotters"`
	Certificates     int64    `json:"certificates"`
	OpenBlotters     int64    `json:"open_blotters"`
	ResidentsBySitio []Bucket `json:"residents_by_sitio"`
	ResidentsBySex   []Bucket `json:"residents_by_sex"`
	BlottersByStatus []Bucket `json:"blotters_by_status"`
}
