package schema

import "github.com/schemascribe/backend/internal/entity"

// entityTypeMap is the generic entity-type to Schema.org-type mapping.
var entityTypeMap = map[entity.Type]string{
	entity.TypePerson:       "Person",
	entity.TypeOrganization: "Organization",
	entity.TypeProduct:      "Product",
	entity.TypeService:      "Service",
	entity.TypeConcept:      "Thing",
	entity.TypeLocation:     "Place",
	entity.TypeEvent:        "Event",
	entity.TypeMedical:      "MedicalEntity",
	entity.TypeFitness:      "Thing",
	entity.TypeMaterial:     "Thing",
	entity.TypeBrand:        "Brand",
	entity.TypeTechnology:   "Thing",
}

// SchemaTypeFor maps an entity to its Schema.org type.
//
// Fitness and exercise concepts are forced to Thing and never to a
// location type: the generic map once produced SportsActivityLocation
// for concepts like VO2 Max, which is an invalid type for an abstract
// measurement. This is a correctness rule, not a heuristic.
func SchemaTypeFor(e entity.Entity) string {
	if e.Type == entity.TypeFitness {
		return "Thing"
	}
	if t, ok := entityTypeMap[e.Type]; ok {
		return t
	}
	return "Thing"
}
