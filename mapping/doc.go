// Package mapping provides field mapping tables, constant sets and the YAML
// schema file that declares resource types.
//
// # Field Mapping Table
//
// A Table is an ordered, bijective list of (wire key, local attribute) pairs
// owned by one resource type. It is checked once when built: duplicate or
// empty keys on either side are a definition error. After that the table is
// immutable and may be shared by any number of goroutines.
//
// Lookups outside the declared set fail with *MappingNotFoundError instead
// of passing the key through, so schema drift between client and server
// surfaces early.
//
// # Constant Sets
//
// A ConstantSet documents the known string tokens of one attribute. It is
// advisory: values outside the set are carried as-is.
//
// # Schema Overview
//
//	version: "1"
//	package: connectapi
//	resources:
//	  - type: territoryAvailabilities
//	    name: TerritoryAvailability
//	    # mapping form: wireKey -> local_name, order preserved
//	    attributes:
//	      available: available
//	      contentStatuses: content_statuses
//	    constants:
//	      - name: ContentStatus
//	        attribute: content_statuses
//	        values: [AVAILABLE, CANNOT_SELL]
//	  - type: territories
//	    # list form: local names derived as snake_case
//	    attributes: [currency]
package mapping
