package repository

import "gorm.io/gorm"

// scopeProperty narrows a query over a property-owned table to the owner's
// rows, joining through properties. An explicit property narrows further;
// it never widens past the owner's holdings.
func scopeProperty(query *gorm.DB, table, ownerID, propertyID string) *gorm.DB {
	query = query.Joins("JOIN properties ON properties.id = "+table+".property_id").
		Where("properties.owner_id = ?", ownerID)
	if propertyID != "" {
		query = query.Where(table+".property_id = ?", propertyID)
	}
	return query
}
