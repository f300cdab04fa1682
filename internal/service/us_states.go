package service

import "upcoming-elections/internal/models"

// usPostalAbbreviations lists the USPS codes offered for US addresses.
var usPostalAbbreviations = []models.Region{
	{Country: "US", Code: "AL", Name: "Alabama"},
	{Country: "US", Code: "AK", Name: "Alaska"},
	{Country: "US", Code: "AS", Name: "American Samoa"},
	{Country: "US", Code: "AZ", Name: "Arizona"},
	{Country: "US", Code: "AR", Name: "Arkansas"},
	{Country: "US", Code: "CA", Name: "California"},
	{Country: "US", Code: "CO", Name: "Colorado"},
	{Country: "US", Code: "CT", Name: "Connecticut"},
	{Country: "US", Code: "DE", Name: "Delaware"},
	{Country: "US", Code: "DC", Name: "District of Columbia"},
	{Country: "US", Code: "FL", Name: "Florida"},
	{Country: "US", Code: "GA", Name: "Georgia"},
	{Country: "US", Code: "GU", Name: "Guam"},
	{Country: "US", Code: "HI", Name: "Hawaii"},
	{Country: "US", Code: "ID", Name: "Idaho"},
	{Country: "US", Code: "IL", Name: "Illinois"},
	{Country: "US", Code: "IN", Name: "Indiana"},
	{Country: "US", Code: "IA", Name: "Iowa"},
	{Country: "US", Code: "KS", Name: "Kansas"},
	{Country: "US", Code: "KY", Name: "Kentucky"},
	{Country: "US", Code: "LA", Name: "Louisiana"},
	{Country: "US", Code: "ME", Name: "Maine"},
	{Country: "US", Code: "MD", Name: "Maryland"},
	{Country: "US", Code: "MA", Name: "Massachusetts"},
	{Country: "US", Code: "MI", Name: "Michigan"},
	{Country: "US", Code: "MN", Name: "Minnesota"},
	{Country: "US", Code: "MS", Name: "Mississippi"},
	{Country: "US", Code: "MO", Name: "Missouri"},
	{Country: "US", Code: "MT", Name: "Montana"},
	{Country: "US", Code: "NE", Name: "Nebraska"},
	{Country: "US", Code: "NV", Name: "Nevada"},
	{Country: "US", Code: "NH", Name: "New Hampshire"},
	{Country: "US", Code: "NJ", Name: "New Jersey"},
	{Country: "US", Code: "NM", Name: "New Mexico"},
	{Country: "US", Code: "NY", Name: "New York"},
	{Country: "US", Code: "NC", Name: "North Carolina"},
	{Country: "US", Code: "ND", Name: "North Dakota"},
	{Country: "US", Code: "MP", Name: "Northern Mariana Islands"},
	{Country: "US", Code: "OH", Name: "Ohio"},
	{Country: "US", Code: "OK", Name: "Oklahoma"},
	{Country: "US", Code: "OR", Name: "Oregon"},
	{Country: "US", Code: "PA", Name: "Pennsylvania"},
	{Country: "US", Code: "PR", Name: "Puerto Rico"},
	{Country: "US", Code: "RI", Name: "Rhode Island"},
	{Country: "US", Code: "SC", Name: "South Carolina"},
	{Country: "US", Code: "SD", Name: "South Dakota"},
	{Country: "US", Code: "TN", Name: "Tennessee"},
	{Country: "US", Code: "TX", Name: "Texas"},
	{Country: "US", Code: "UT", Name: "Utah"},
	{Country: "US", Code: "VT", Name: "Vermont"},
	{Country: "US", Code: "VI", Name: "U.S. Virgin Islands"},
	{Country: "US", Code: "VA", Name: "Virginia"},
	{Country: "US", Code: "WA", Name: "Washington"},
	{Country: "US", Code: "WV", Name: "West Virginia"},
	{Country: "US", Code: "WI", Name: "Wisconsin"},
	{Country: "US", Code: "WY", Name: "Wyoming"},
}
