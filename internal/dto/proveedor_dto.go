package dto

type CrearProveedorRequest struct {
	NombreProveedor string `json:"nombre_proveedor" form:"nombre_proveedor"`
	Telefono        string `json:"telefono"         form:"telefono"`
	Direccion       string `json:"direccion"        form:"direccion"`
	Email           string `json:"email"            form:"email"`
	Producto        string `json:"producto"         form:"producto"`
}

type ProveedorResponse struct {
	ID              string `json:"id"`
	NombreProveedor string `json:"nombre_proveedor"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	Email           string `json:"email"`
	Producto        string `json:"producto"`
}
