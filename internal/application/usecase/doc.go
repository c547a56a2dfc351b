// Package usecase contiene los servicios de entidad: la única vía sancionada para tocar el almacenamiento.
//
// Toda mutación lee la(s) colección(es) completa(s), modifica en memoria y las reemplaza enteras
// con repository.Store.Replace. No hay versionado por registro: dos ciclos leer-modificar-escribir
// concurrentes sobre la misma colección pueden perder una actualización (gana el último en escribir).
// Cada Replace es atómico, así que nunca queda una colección escrita a medias.
//
// Las lecturas de un id inexistente devuelven (nil, nil); las mutaciones sobre un id inexistente también.
// Las cascadas (borrar organización, equipo o persona) se replican aquí aunque el motor declare FKs,
// para que el puerto Store pueda implementarse sin restricciones relacionales.
package usecase
