package i18n

import "github.com/Pesokrava/storefront/internal/domain"

const (
	en = domain.LocaleEnglish
	fr = domain.LocaleFrench
	de = domain.LocaleGerman
)

// Announcement keys in carousel order
var AnnouncementKeys = []string{
	"announcement.clearance",
	"announcement.free_shipping",
	"announcement.new_arrivals",
}

// messages is the storefront string table. Entries without a locale fall back to English.
var messages = map[string]map[domain.Locale]string{
	// Header
	"nav.shop_men":    {en: "SHOP MEN", fr: "HOMMES", de: "HERREN"},
	"nav.shop_women":  {en: "SHOP WOMEN", fr: "FEMMES", de: "DAMEN"},
	"nav.support":     {en: "SUPPORT", fr: "ASSISTANCE", de: "KUNDENDIENST"},
	"nav.featured":    {en: "Featured", fr: "En vedette", de: "Empfohlen"},
	"nav.contact_us":  {en: "Contact Us", fr: "Contactez-nous", de: "Kontakt"},
	"nav.faq":         {en: "FAQ", fr: "FAQ", de: "FAQ"},
	"nav.shipping":    {en: "Shipping", fr: "Expédition", de: "Versand"},
	"nav.returns":     {en: "Returns", fr: "Retours", de: "Rücksendungen"},
	"nav.size_guide":  {en: "Size Guide", fr: "Guide des tailles", de: "Größentabelle"},
	"nav.language":    {en: "Language", de: "Sprache"},
	"nav.currency":    {en: "Currency", de: "Währung"},
	"nav.bestsellers": {en: "BESTSELLERS", fr: "MEILLEURES VENTES", de: "BESTSELLER"},

	// Filter sidebar
	"filter.title":             {en: "FILTERS", fr: "FILTRES", de: "FILTER"},
	"filter.reset_all":         {en: "Reset all", fr: "Réinitialiser tout", de: "Alle zurücksetzen"},
	"filter.reset":             {en: "Reset", fr: "Réinitialiser", de: "Zurücksetzen"},
	"filter.apply":             {en: "Apply Filters", fr: "Appliquer les filtres", de: "Filter anwenden"},
	"filter.in_stock_only":     {en: "In stock only", fr: "En stock seulement", de: "Nur verfügbare Artikel"},
	"filter.price":             {en: "PRICE", fr: "PRIX", de: "PREIS"},
	"filter.size":              {en: "SIZE", fr: "TAILLE", de: "GRÖSSE"},
	"filter.color":             {en: "COLOR", fr: "COULEUR", de: "FARBE"},
	"filter.category":          {en: "CATEGORY", de: "KATEGORIE"},
	"filter.material":          {en: "MATERIAL", de: "MATERIAL"},
	"filter.rating":            {en: "RATING", de: "BEWERTUNG"},
	"filter.rating_and_up":     {en: "& up", de: "& höher"},
	"filter.sustainability":    {en: "SUSTAINABILITY", de: "NACHHALTIGKEIT"},
	"filter.sustainable_only":  {en: "Sustainable products only", de: "Nur nachhaltige Produkte"},
	"filter.eco_materials":     {en: "Eco-friendly materials", de: "Umweltfreundliche Materialien"},
	"filter.ethical":           {en: "Ethical production", de: "Ethische Produktion"},
	"filter.reduced_footprint": {en: "Reduced carbon footprint", de: "Reduzierter CO2-Fußabdruck"},

	// Product grid
	"sort.label":            {en: "Sort by:", fr: "Trier par:", de: "Sortieren nach:"},
	"sort.featured":         {en: "FEATURED", fr: "EN VEDETTE", de: "EMPFOHLEN"},
	"sort.price_asc":        {en: "PRICE: LOW TO HIGH", fr: "PRIX: CROISSANT", de: "PREIS: AUFSTEIGEND"},
	"sort.price_desc":       {en: "PRICE: HIGH TO LOW", fr: "PRIX: DÉCROISSANT", de: "PREIS: ABSTEIGEND"},
	"sort.newest":           {en: "NEWEST", fr: "PLUS RÉCENT", de: "NEUESTE"},
	"sort.best_selling":     {en: "BEST SELLING", fr: "MEILLEURES VENTES", de: "BESTSELLER"},
	"grid.save":             {en: "SAVE", fr: "ÉCONOMISEZ", de: "SPAREN"},
	"grid.sold_out":         {en: "Sold Out", fr: "Épuisé", de: "Ausverkauft"},
	"grid.no_results":       {en: "No products found matching your filter criteria.", fr: "Aucun produit ne correspond à vos critères de filtrage.", de: "Keine Produkte gefunden, die Ihren Filterkriterien entsprechen."},
	"grid.no_results_hint":  {en: "Try adjusting or resetting your filters.", fr: "Essayez d'ajuster ou de réinitialiser vos filtres.", de: "Versuchen Sie, Ihre Filter anzupassen oder zurückzusetzen."},
	"grid.explore":          {en: "Explore Our Collection", fr: "Explorez Notre Collection", de: "Entdecken Sie Unsere Kollektion"},
	"grid.hero_description": {en: "Discover our curated collection of timeless luxury pieces that define the old money aesthetic.", fr: "Découvrez notre collection de pièces de luxe intemporelles qui définissent l'esthétique old money.", de: "Entdecken Sie unsere kuratierte Kollektion zeitloser Luxusstücke, die den Old-Money-Stil definieren."},

	// Cart
	"cart.added":        {en: "Added to Cart!", fr: "Ajouté au panier!", de: "Zum Warenkorb hinzugefügt!"},
	"cart.added_body":   {en: "has been added to your cart.", de: "wurde deinem Warenkorb hinzugefügt."},
	"cart.add":          {en: "Add to Cart", de: "In den Warenkorb"},
	"cart.out_of_stock": {en: "Out of Stock", de: "Nicht auf Lager"},

	// Product page
	"product.select_size":         {en: "Select Size", de: "Größe wählen"},
	"product.select_color":        {en: "Select Color", de: "Farbe wählen"},
	"product.in_stock":            {en: "In Stock", de: "Auf Lager"},
	"product.free_shipping":       {en: "Free Shipping", de: "Kostenloser Versand"},
	"product.free_returns":        {en: "Free Returns", de: "Kostenlose Rücksendung"},
	"product.missing_info":        {en: "Missing Information", de: "Fehlende Angaben"},
	"product.missing_info_body":   {en: "Please select both size and color before adding to cart.", de: "Bitte wählen Sie sowohl Größe als auch Farbe aus, bevor Sie den Artikel in den Warenkorb legen."},
	"product.invalid_selection":   {en: "The selected size or color is not available for this product.", de: "Die gewählte Größe oder Farbe ist für dieses Produkt nicht verfügbar."},
	"product.you_might_also_like": {en: "You might also like", de: "Das könnte dir auch gefallen"},

	// Announcements
	"announcement.clearance":     {en: "CLEARANCE SALE - UP TO 50% OFF", fr: "SOLDES - JUSQU'À 50% DE RÉDUCTION", de: "AUSVERKAUF - BIS ZU 50% RABATT"},
	"announcement.free_shipping": {en: "FREE SHIPPING ON ORDERS OVER $150", fr: "LIVRAISON GRATUITE POUR LES COMMANDES DE PLUS DE 150€", de: "KOSTENLOSER VERSAND BEI BESTELLUNGEN ÜBER 150€"},
	"announcement.new_arrivals":  {en: "NEW ARRIVALS - SPRING COLLECTION", fr: "NOUVEAUTÉS - COLLECTION PRINTEMPS", de: "NEUHEITEN - FRÜHJAHRSKOLLEKTION"},

	// Categories and materials
	"category.shoes":       {en: "Shoes", de: "Schuhe"},
	"category.shirts":      {en: "Shirts", de: "Hemden"},
	"category.accessories": {en: "Accessories", de: "Accessoires"},
	"category.outerwear":   {en: "Outerwear", de: "Jacken & Mäntel"},
	"material.cotton":      {en: "Cotton", de: "Baumwolle"},
	"material.linen":       {en: "Linen", de: "Leinen"},
	"material.cashmere":    {en: "Cashmere", de: "Kaschmir"},

	// Colors
	"color.black": {en: "Black", de: "Schwarz"},
	"color.white": {en: "White", de: "Weiß"},
	"color.gray":  {en: "Gray", de: "Grau"},
	"color.navy":  {en: "Navy", de: "Marineblau"},
	"color.beige": {en: "Beige", de: "Beige"},

	// Footer
	"footer.rights": {en: "All rights reserved.", de: "Alle Rechte vorbehalten."},
	"footer.legal":  {en: "Legal Notice", de: "Impressum"},
}
