package catalog

import "github.com/ynitaziki/storefront/internal/client/models"

var builtin = []models.Product{
	{ID: "sofa-oslo", Name: "Oslo sofa", Price: 749, Image: "img/sofa-oslo.jpg"},
	{ID: "chair-bergen", Name: "Bergen armchair", Price: 289.9, Image: "img/chair-bergen.jpg"},
	{ID: "table-malmo", Name: "Malmo dining table", Price: 420, Image: "img/table-malmo.jpg"},
	{ID: "lamp-aarhus", Name: "Aarhus floor lamp", Price: 89.5, Image: "img/lamp-aarhus.jpg"},
	{ID: "shelf-turku", Name: "Turku wall shelf", Price: 45, Image: "img/shelf-turku.jpg"},
	{ID: "bed-tampere", Name: "Tampere double bed", Price: 610, Image: "img/bed-tampere.jpg"},
	{ID: "rug-odense", Name: "Odense wool rug", Price: 135.25, Image: "img/rug-odense.jpg"},
	{ID: "stool-lund", Name: "Lund bar stool", Price: 59.99, Image: "img/stool-lund.jpg"},
}

// Default returns the catalog shipped with the client.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}
